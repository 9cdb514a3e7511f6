package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/prachinebangla/seogen/internal/service"
)

// resolveService returns the content service for a running command.
type resolveService func(cmd *cobra.Command) (service.ContentService, error)

const companyFlagUsage = "company name used in titles and keywords (default from configuration)"

func newAnalyzeURLCommand(resolve resolveService) *cobra.Command {
	var company string

	cmd := &cobra.Command{
		Use:   "analyze-url <url>",
		Short: "Extract a product page and generate SEO metadata for it",
		Example: `  seogen analyze-url https://example.com/products/napa-500mg
  seogen analyze-url example.com/p/123 --company "Health Hub"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := resolve(cmd)
			if err != nil {
				return err
			}
			result, err := svc.AnalyzeURL(cmd.Context(), args[0], company)
			if err != nil {
				return err
			}
			return printJSON(cmd, result)
		},
	}
	cmd.Flags().StringVar(&company, "company", "", companyFlagUsage)
	return cmd
}

func newGenerateCommand(resolve resolveService) *cobra.Command {
	var (
		company  string
		keywords int
	)

	cmd := &cobra.Command{
		Use:   "generate <content>",
		Short: "Generate a title, meta description and keywords for product content",
		Example: `  seogen generate "Fexomin 120mg Tablet is an antihistamine"
  seogen generate --keywords 8 --company "Shoe Co" "Converse summer sneakers"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if keywords < 0 {
				return fmt.Errorf("--keywords must not be negative, got %d", keywords)
			}
			svc, err := resolve(cmd)
			if err != nil {
				return err
			}
			result, err := svc.GenerateContent(cmd.Context(), strings.Join(args, " "), company, keywords)
			if err != nil {
				return err
			}
			return printJSON(cmd, result)
		},
	}
	cmd.Flags().StringVar(&company, "company", "", companyFlagUsage)
	cmd.Flags().IntVar(&keywords, "keywords", 0, "number of keywords, clamped to 5..10 (0 selects the default)")
	return cmd
}

func newParaphraseCommand(resolve resolveService) *cobra.Command {
	var company string

	cmd := &cobra.Command{
		Use:   "paraphrase <text>",
		Short: "Rewrite an existing product description",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := resolve(cmd)
			if err != nil {
				return err
			}
			result, err := svc.Paraphrase(cmd.Context(), strings.Join(args, " "), company)
			if err != nil {
				return err
			}
			return printJSON(cmd, result)
		},
	}
	cmd.Flags().StringVar(&company, "company", "", companyFlagUsage)
	return cmd
}

func newDescribeCommand(resolve resolveService) *cobra.Command {
	var company string

	cmd := &cobra.Command{
		Use:   "describe <product-info>",
		Short: "Generate a structured product description",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := resolve(cmd)
			if err != nil {
				return err
			}
			result, err := svc.ProductDescription(cmd.Context(), strings.Join(args, " "), company)
			if err != nil {
				return err
			}
			return printJSON(cmd, result)
		},
	}
	cmd.Flags().StringVar(&company, "company", "", companyFlagUsage)
	return cmd
}

// printJSON writes v as indented JSON to the command output.
func printJSON(cmd *cobra.Command, v interface{}) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}
