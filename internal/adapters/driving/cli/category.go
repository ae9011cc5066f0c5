package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/kith-cli/internal/core/domain"
)

var categoryCmd = &cobra.Command{
	Use:     "category",
	Aliases: []string{"categories"},
	Short:   "Manage contact categories",
	Long: `Categories group contacts that share a check-in cadence, for example
"Family, every month" or "Close Friends, every 2 weeks".`,
}

var categoryAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Create a category",
	Long: `Create a category with a check-in frequency.

Examples:
  kith category add "Close Friends" --every "2 weeks"
  kith category add Family --every month --color "#F38BA8"`,
	Args: cobra.ExactArgs(1),
	RunE: runCategoryAdd,
}

var categoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories",
	RunE:  runCategoryList,
}

var categoryUpdateCmd = &cobra.Command{
	Use:   "update [category-id]",
	Short: "Change a category's name, frequency or color",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategoryUpdate,
}

var categoryRemoveCmd = &cobra.Command{
	Use:   "remove [category-id]",
	Short: "Delete a category that no contact uses",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategoryRemove,
}

var categorySeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the default categories when none exist",
	RunE:  runCategorySeed,
}

// Category flags.
var (
	categoryEvery string
	categoryColor string
	categoryName  string
)

func init() {
	categoryAddCmd.Flags().StringVarP(&categoryEvery, "every", "e", "", `Check-in frequency, e.g. "2 weeks" (required)`)
	categoryAddCmd.Flags().StringVar(&categoryColor, "color", "", "Display color, e.g. #7C3AED")
	_ = categoryAddCmd.MarkFlagRequired("every")

	categoryUpdateCmd.Flags().StringVar(&categoryName, "name", "", "New name")
	categoryUpdateCmd.Flags().StringVarP(&categoryEvery, "every", "e", "", "New check-in frequency")
	categoryUpdateCmd.Flags().StringVar(&categoryColor, "color", "", "New display color")

	categoryCmd.AddCommand(categoryAddCmd)
	categoryCmd.AddCommand(categoryListCmd)
	categoryCmd.AddCommand(categoryUpdateCmd)
	categoryCmd.AddCommand(categoryRemoveCmd)
	categoryCmd.AddCommand(categorySeedCmd)
	rootCmd.AddCommand(categoryCmd)
}

func runCategoryAdd(cmd *cobra.Command, args []string) error {
	if categoryService == nil {
		return errors.New("category service not configured")
	}

	freq, err := domain.ParseCheckInFrequency(categoryEvery)
	if err != nil {
		return err
	}

	category, err := categoryService.Create(cmd.Context(), domain.Category{
		Name:      args[0],
		Frequency: freq,
		Color:     categoryColor,
	})
	if err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}

	cmd.Printf("Created category %s (%s)\n", category.Name, category.Frequency)
	cmd.Printf("  ID: %s\n", category.ID)
	return nil
}

func runCategoryList(cmd *cobra.Command, _ []string) error {
	if categoryService == nil {
		return errors.New("category service not configured")
	}

	categories, err := categoryService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list categories: %w", err)
	}

	if len(categories) == 0 {
		cmd.Println("No categories. Run 'kith category seed' to create the defaults.")
		return nil
	}

	cmd.Println("Categories:")
	for i := range categories {
		c := categories[i]
		cmd.Printf("  %-20s %-16s %s\n", c.Name, c.Frequency, c.ID)
	}
	return nil
}

func runCategoryUpdate(cmd *cobra.Command, args []string) error {
	if categoryService == nil {
		return errors.New("category service not configured")
	}

	id, err := domain.ParseCategoryID(args[0])
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	category, err := categoryService.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get category: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("name") {
		category.Name = categoryName
	}
	if flags.Changed("every") {
		freq, err := domain.ParseCheckInFrequency(categoryEvery)
		if err != nil {
			return err
		}
		category.Frequency = freq
	}
	if flags.Changed("color") {
		category.Color = categoryColor
	}

	updated, err := categoryService.Update(ctx, *category)
	if err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}

	cmd.Printf("Updated category %s (%s)\n", updated.Name, updated.Frequency)
	return nil
}

func runCategoryRemove(cmd *cobra.Command, args []string) error {
	if categoryService == nil {
		return errors.New("category service not configured")
	}

	id, err := domain.ParseCategoryID(args[0])
	if err != nil {
		return err
	}
	err = categoryService.Delete(cmd.Context(), id)
	if errors.Is(err, domain.ErrCategoryInUse) {
		return fmt.Errorf("failed to remove category: %w; move its contacts to another category first", err)
	}
	if err != nil {
		return fmt.Errorf("failed to remove category: %w", err)
	}

	cmd.Printf("Removed category %s\n", id)
	return nil
}

func runCategorySeed(cmd *cobra.Command, _ []string) error {
	if categoryService == nil {
		return errors.New("category service not configured")
	}

	created, err := categoryService.SeedDefaults(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}

	if len(created) == 0 {
		cmd.Println("Categories already exist; nothing seeded.")
		return nil
	}

	cmd.Printf("Created %d default categories:\n", len(created))
	for i := range created {
		cmd.Printf("  %-20s %s\n", created[i].Name, created[i].Frequency)
	}
	return nil
}
