// Package cmd - estimate command
package cmd

import (
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pricing-simulator/core/catalog"
	"pricing-simulator/core/output"
	"pricing-simulator/core/pricing/primitives"
	"pricing-simulator/core/simulator"
	"pricing-simulator/internal/config"
	"pricing-simulator/internal/errors"
	"pricing-simulator/internal/logging"
)

var (
	catalogFile  string
	quantities   []string
	outputFormat string
	noColor      bool
)

// estimateCmd represents the estimate command
var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate prices for a set of quantities",
	Long: `Load a pricing catalog, apply one quantity per section and print the
interval, section and total prices.

Quantities are given in each section's base unit; byte sizes may use a
suffix (KB, MB, GB, TB or KiB, MiB, GiB, TiB). Sections without a quantity
stay at zero. A quantity that is not a number is ignored.

Examples:
  pricesim estimate --catalog storage.hcl --quantity storage=250
  pricesim estimate -c storage.hcl -q storage=10GB -q public-users=120 -f json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()

		opts := estimateOptions{
			catalogPath: catalogFile,
			quantities:  quantities,
			format:      output.Format(outputFormat),
			noColor:     noColor || cfg.Output.NoColor,
			strict:      cfg.Pricing.StrictCatalog,
			currency:    cfg.Pricing.DefaultCurrency,
		}
		if opts.catalogPath == "" {
			opts.catalogPath = cfg.Pricing.Catalog
		}
		if !cmd.Flags().Changed("format") {
			opts.format = output.Format(cfg.Output.DefaultFormat)
		}

		return runEstimate(cmd.OutOrStdout(), opts)
	},
}

func init() {
	estimateCmd.Flags().StringVarP(&catalogFile, "catalog", "c", "", "catalog file (.hcl or .json)")
	estimateCmd.Flags().StringArrayVarP(&quantities, "quantity", "q", nil, "section quantity as type=value (repeatable)")
	estimateCmd.Flags().StringVarP(&outputFormat, "format", "f", "cli", "output format (cli, json)")
	estimateCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colour output")
}

type estimateOptions struct {
	catalogPath string
	quantities  []string
	format      output.Format
	noColor     bool
	strict      bool
	currency    primitives.Currency
}

// quantityArg is one parsed --quantity flag
type quantityArg struct {
	section primitives.SectionType
	raw     string
}

func runEstimate(w io.Writer, opts estimateOptions) error {
	if opts.catalogPath == "" {
		return errors.Input("no catalog given: use --catalog or set pricing.catalog")
	}

	args, err := parseQuantities(opts.quantities)
	if err != nil {
		return err
	}

	formatter, err := output.NewFormatter(opts.format, opts.noColor)
	if err != nil {
		return err
	}

	c, err := catalog.Load(opts.catalogPath)
	if err != nil {
		return err
	}
	if c.Currency == "" {
		c.Currency = opts.currency
	}

	problems := c.Validate(catalog.DefaultValidationRules())
	if opts.strict {
		if err := c.ValidationError(problems); err != nil {
			return err
		}
	}
	for _, problem := range problems {
		logging.Warn("catalog problem", zap.String("catalog", opts.catalogPath), zap.Error(problem))
	}

	sim := c.Simulator(simulator.WithLogger(logging.Named("simulator")))
	for _, arg := range args {
		q, err := primitives.ParseQuantity(arg.raw)
		if err != nil {
			logging.Warn("ignoring non-numeric quantity",
				logging.Section(arg.section.String()),
				zap.String("quantity", arg.raw))
			if _, err := sim.Quantity(arg.section); err != nil {
				return err
			}
			continue
		}
		if err := sim.SetQuantityDecimal(arg.section, q); err != nil {
			return err
		}
	}

	estimate, err := output.Build(sim, c.Name, c.Currency)
	if err != nil {
		return err
	}
	logging.Debug("estimate computed",
		zap.String("catalog", opts.catalogPath),
		logging.Decimal("total", estimate.Total))

	if err := formatter.Render(w, estimate); err != nil {
		return errors.Internal("failed to render estimate", err)
	}
	return nil
}

// parseQuantities splits type=value flags, keeping their order
func parseQuantities(raw []string) ([]quantityArg, error) {
	args := make([]quantityArg, 0, len(raw))
	for _, r := range raw {
		name, value, ok := strings.Cut(r, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, errors.Newf(errors.TypeInput, "invalid quantity %q: expected type=value", r)
		}
		args = append(args, quantityArg{
			section: primitives.SectionType(name),
			raw:     strings.TrimSpace(value),
		})
	}
	return args, nil
}
