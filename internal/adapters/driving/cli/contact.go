package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/kith-cli/internal/core/domain"
)

var contactCmd = &cobra.Command{
	Use:     "contact",
	Aliases: []string{"contacts"},
	Short:   "Manage contacts",
	Long: `Add, view, update, search and remove the people you keep in touch with.

A contact added with a category gets its first check-in scheduled straight away.`,
}

var contactAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a contact",
	Long: `Add a contact.

Examples:
  kith contact add "Alice Smith" --category <category-id>
  kith contact add Bob --email bob@example.com --timezone Europe/London`,
	Args: cobra.ExactArgs(1),
	RunE: runContactAdd,
}

var contactListCmd = &cobra.Command{
	Use:   "list",
	Short: "List contacts",
	RunE:  runContactList,
}

var contactShowCmd = &cobra.Command{
	Use:   "show [contact-id]",
	Short: "Show a contact and its check-in history",
	Args:  cobra.ExactArgs(1),
	RunE:  runContactShow,
}

var contactUpdateCmd = &cobra.Command{
	Use:   "update [contact-id]",
	Short: "Update a contact",
	Long: `Update the given fields of a contact. Pass --category "" to make the contact
uncategorized.`,
	Args: cobra.ExactArgs(1),
	RunE: runContactUpdate,
}

var contactRemoveCmd = &cobra.Command{
	Use:   "remove [contact-id]",
	Short: "Remove a contact and its check-ins",
	Args:  cobra.ExactArgs(1),
	RunE:  runContactRemove,
}

var contactSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search contacts by name, email, phone or notes",
	Args:  cobra.ExactArgs(1),
	RunE:  runContactSearch,
}

// Contact flags.
var (
	contactName     string
	contactEmail    string
	contactPhone    string
	contactNotes    string
	contactCategory string
	contactTimezone string
	contactYes      bool
)

func init() {
	for _, c := range []*cobra.Command{contactAddCmd, contactUpdateCmd} {
		c.Flags().StringVar(&contactEmail, "email", "", "Email address")
		c.Flags().StringVar(&contactPhone, "phone", "", "Phone number")
		c.Flags().StringVar(&contactNotes, "notes", "", "Free text notes")
		c.Flags().StringVarP(&contactCategory, "category", "c", "", "Category ID")
		c.Flags().StringVar(&contactTimezone, "timezone", "", "IANA timezone, e.g. Europe/London")
	}
	contactUpdateCmd.Flags().StringVar(&contactName, "name", "", "New name")
	contactRemoveCmd.Flags().BoolVarP(&contactYes, "yes", "y", false, "Skip the confirmation prompt")

	contactCmd.AddCommand(contactAddCmd)
	contactCmd.AddCommand(contactListCmd)
	contactCmd.AddCommand(contactShowCmd)
	contactCmd.AddCommand(contactUpdateCmd)
	contactCmd.AddCommand(contactRemoveCmd)
	contactCmd.AddCommand(contactSearchCmd)
	rootCmd.AddCommand(contactCmd)
}

func runContactAdd(cmd *cobra.Command, args []string) error {
	if contactService == nil {
		return errors.New("contact service not configured")
	}

	ctx := cmd.Context()
	contact, err := contactService.Create(ctx, domain.Contact{
		Name:       args[0],
		Email:      contactEmail,
		Phone:      contactPhone,
		Notes:      contactNotes,
		CategoryID: domain.CategoryID(contactCategory),
		Timezone:   contactTimezone,
	})
	if err != nil {
		return fmt.Errorf("failed to add contact: %w", err)
	}

	cmd.Printf("Added contact %s\n", contact.Name)
	cmd.Printf("  ID: %s\n", contact.ID)
	if contact.IsCategorized() && checkInService != nil {
		if history, err := checkInService.CheckInHistory(ctx, contact.ID); err == nil && len(history) > 0 {
			last := history[len(history)-1]
			cmd.Printf("  First check-in: %s\n", last.ScheduledDate().Time().Format(domain.DateLayout))
		}
	}
	return nil
}

func runContactList(cmd *cobra.Command, _ []string) error {
	if contactService == nil {
		return errors.New("contact service not configured")
	}

	contacts, err := contactService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list contacts: %w", err)
	}
	printContacts(cmd, contacts)
	return nil
}

func runContactSearch(cmd *cobra.Command, args []string) error {
	if contactService == nil {
		return errors.New("contact service not configured")
	}

	contacts, err := contactService.Search(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to search contacts: %w", err)
	}
	printContacts(cmd, contacts)
	return nil
}

func printContacts(cmd *cobra.Command, contacts []domain.Contact) {
	if len(contacts) == 0 {
		cmd.Println("No contacts found.")
		return
	}

	categories := categoryNames(cmd)
	cmd.Println("Contacts:")
	for i := range contacts {
		c := contacts[i]
		category := "-"
		if c.IsCategorized() {
			category = categories[c.CategoryID]
			if category == "" {
				category = c.CategoryID.String()
			}
		}
		cmd.Printf("  %-20s %-16s %s\n", c.Name, category, c.ID)
	}
	cmd.Printf("\nTotal: %d contacts\n", len(contacts))
}

func categoryNames(cmd *cobra.Command) map[domain.CategoryID]string {
	names := make(map[domain.CategoryID]string)
	if categoryService == nil {
		return names
	}
	categories, err := categoryService.List(cmd.Context())
	if err != nil {
		return names
	}
	for i := range categories {
		names[categories[i].ID] = categories[i].Name
	}
	return names
}

func runContactShow(cmd *cobra.Command, args []string) error {
	if contactService == nil {
		return errors.New("contact service not configured")
	}

	id, err := domain.ParseContactID(args[0])
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	contact, err := contactService.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get contact: %w", err)
	}

	cmd.Printf("Contact: %s\n\n", contact.Name)
	cmd.Printf("  ID:       %s\n", contact.ID)
	if contact.Email != "" {
		cmd.Printf("  Email:    %s\n", contact.Email)
	}
	if contact.Phone != "" {
		cmd.Printf("  Phone:    %s\n", contact.Phone)
	}
	if contact.IsCategorized() {
		cmd.Printf("  Category: %s\n", categoryNames(cmd)[contact.CategoryID])
	}
	if contact.Timezone != "" {
		cmd.Printf("  Timezone: %s\n", contact.Timezone)
	}
	if contact.Notes != "" {
		cmd.Printf("  Notes:    %s\n", contact.Notes)
	}
	cmd.Printf("  Created:  %s\n", contact.CreatedAt.Format(timestampLayout))

	if checkInService == nil {
		return nil
	}
	history, err := checkInService.CheckInHistory(ctx, contact.ID)
	if err != nil {
		return fmt.Errorf("failed to get check-in history: %w", err)
	}
	cmd.Println("\nCheck-ins:")
	if len(history) == 0 {
		cmd.Println("  none")
		return nil
	}
	printCheckIns(ctx, cmd, history)
	return nil
}

func runContactUpdate(cmd *cobra.Command, args []string) error {
	if contactService == nil {
		return errors.New("contact service not configured")
	}

	id, err := domain.ParseContactID(args[0])
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	contact, err := contactService.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get contact: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("name") {
		contact.Name = contactName
	}
	if flags.Changed("email") {
		contact.Email = contactEmail
	}
	if flags.Changed("phone") {
		contact.Phone = contactPhone
	}
	if flags.Changed("notes") {
		contact.Notes = contactNotes
	}
	if flags.Changed("category") {
		contact.CategoryID = domain.CategoryID(contactCategory)
	}
	if flags.Changed("timezone") {
		contact.Timezone = contactTimezone
	}

	updated, err := contactService.Update(ctx, *contact)
	if err != nil {
		return fmt.Errorf("failed to update contact: %w", err)
	}

	cmd.Printf("Updated contact %s\n", updated.Name)
	return nil
}

func runContactRemove(cmd *cobra.Command, args []string) error {
	if contactService == nil {
		return errors.New("contact service not configured")
	}

	id, err := domain.ParseContactID(args[0])
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	contact, err := contactService.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get contact: %w", err)
	}

	if !contactYes {
		ok, err := confirm(cmd, fmt.Sprintf("Remove %s and all of their check-ins?", contact.Name))
		if err != nil {
			return err
		}
		if !ok {
			cmd.Println("Cancelled.")
			return nil
		}
	}

	if err := contactService.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to remove contact: %w", err)
	}

	cmd.Printf("Removed contact %s\n", contact.Name)
	return nil
}
