package cmd

import (
	"fmt"

	"github.com/josephgoksu/todolist/models"
	"github.com/spf13/cobra"
)

// editCmd represents the edit command
var editCmd = &cobra.Command{
	Use:   "edit <n>",
	Short: "Change a task's fields",
	Long: `Change the fields of task n. Fields without a flag keep their current
value, and the task's completion is never changed by an edit.

Examples:
  todolist edit 2 --title "Write Q2 report"
  todolist edit 1 --due 2024-06-01 --priority High`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

var (
	editTitle    string
	editDesc     string
	editDue      string
	editPriority string
	editCategory string
)

func init() {
	rootCmd.AddCommand(editCmd)

	editCmd.Flags().StringVarP(&editTitle, "title", "t", "", "New title")
	editCmd.Flags().StringVarP(&editDesc, "desc", "d", "", "New description")
	editCmd.Flags().StringVar(&editDue, "due", "", "New due date (YYYY-MM-DD, today or tomorrow; empty clears it)")
	editCmd.Flags().StringVarP(&editPriority, "priority", "p", "", "New priority (High, Medium, Low)")
	editCmd.Flags().StringVar(&editCategory, "category", "", "New category")
}

func runEdit(cmd *cobra.Command, args []string) error {
	pos, err := parsePosition(args[0])
	if err != nil {
		return err
	}

	sess, err := openStore()
	if err != nil {
		return err
	}
	defer sess.release()

	count := sess.store.Len()
	if pos < 0 || pos >= count {
		return reportOutOfRange(cmd.OutOrStdout(), "edit", pos, count)
	}

	current := sess.store.List()[pos]
	title, desc, due, priority, category := current.Title, current.Description, current.DueDate, current.Priority, current.Category

	flags := cmd.Flags()
	if flags.Changed("title") {
		title = editTitle
	}
	if flags.Changed("desc") {
		desc = editDesc
	}
	if flags.Changed("due") {
		if due, err = parseDueDate(editDue); err != nil {
			return err
		}
	}
	if flags.Changed("priority") {
		priority = normalizePriority(editPriority)
	}
	if flags.Changed("category") {
		category = editCategory
	}

	if err := checkInput(models.TaskInput{
		Title:       title,
		Description: desc,
		DueDate:     due,
		Priority:    string(priority),
		Category:    category,
	}); err != nil {
		return err
	}

	if err := sess.store.Edit(pos, title, desc, due, priority, category); err != nil {
		return fmt.Errorf("edit task %d: %w", pos+1, err)
	}

	task := sess.store.List()[pos]
	if isJSON() {
		return printJSON(cmd.OutOrStdout(), mutationResult{Action: "edit", Number: pos + 1, Changed: true, Task: &task})
	}
	printInfo(cmd.OutOrStdout(), "Updated task %d: %s", pos+1, task.Title)
	return nil
}
