package cli

import (
	"github.com/spf13/cobra"

	"github.com/Maria-Villafuerte/MCP/internal/colorimetry"
	"github.com/Maria-Villafuerte/MCP/internal/profiles"
	"github.com/Maria-Villafuerte/MCP/internal/server"
)

// attributeFlags binds the person description to command flags.
func attributeFlags(cmd *cobra.Command, a *colorimetry.Attributes) {
	f := cmd.Flags()
	f.StringVar(&a.SkinTone, "skin", "", "skin tone: light, medium, deep (clara, media, oscura)")
	f.StringVar(&a.EyeColor, "eyes", "", "eye color")
	f.StringVar(&a.HairColor, "hair", "", "natural hair color")
	f.StringVar(&a.HairType, "hair-type", "", "hair type: straight, wavy, curly")
	f.StringVar(&a.StylePreference, "style", "", "style preference")
	f.StringVar(&a.ContrastLevel, "contrast", "", "contrast: low, medium, high (estimated when omitted)")
	f.StringVar(&a.VeinColor, "vein", "", "wrist vein color: blue, green, mixed")
	f.StringVar(&a.JewelryPreference, "jewelry", "", "flattering metal: silver, gold, rose_gold, both")
	f.StringVar(&a.SunReaction, "sun", "", "sun reaction: burns, tans, sometimes")
	f.StringVar(&a.NaturalLipColor, "lips", "", "natural lip color: pink, peach, nude")
	f.StringVar(&a.StatedUndertone, "undertone", "", "self-reported undertone: cool, warm, neutral")
}

func newClassifyCmd(a *app) *cobra.Command {
	var attrs colorimetry.Attributes

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify undertone and season and print the profile as JSON",
		Example: `  beauty-mcp classify --skin clara --eyes azul --hair rubio --vein azul --jewelry plata
  beauty-mcp classify --skin medium --eyes brown --hair brown --undertone warm`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := *a.cfg
			cfg.StoreBackend = profiles.BackendMemory

			svc, cleanup, err := server.NewService(&cfg, a.log, nil)
			if err != nil {
				return err
			}
			defer cleanup()

			p, err := svc.Classify(attrs)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), p)
		},
	}
	attributeFlags(cmd, &attrs)
	return cmd
}
