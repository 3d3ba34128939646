/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"
	"strings"

	"github.com/josephgoksu/todolist/models"
	"github.com/spf13/cobra"
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a new task",
	Long: `Add a new task to the end of the list. New tasks start incomplete.

Examples:
  todolist add "Buy milk"
  todolist add "Write report" --desc "Q2 numbers" --due 2024-04-15 --priority Medium --category Work
  todolist add "Call mom" --due tomorrow`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

var (
	addDesc     string
	addDue      string
	addPriority string
	addCategory string
)

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVarP(&addDesc, "desc", "d", "", "Task description")
	addCmd.Flags().StringVar(&addDue, "due", "today", "Due date (YYYY-MM-DD, today or tomorrow)")
	addCmd.Flags().StringVarP(&addPriority, "priority", "p", string(models.PriorityLow), "Priority (High, Medium, Low)")
	addCmd.Flags().StringVar(&addCategory, "category", "", "Task category")
}

func runAdd(cmd *cobra.Command, args []string) error {
	title := strings.TrimSpace(strings.Join(args, " "))

	due, err := parseDueDate(addDue)
	if err != nil {
		return err
	}
	priority := normalizePriority(addPriority)

	if err := checkInput(models.TaskInput{
		Title:       title,
		Description: addDesc,
		DueDate:     due,
		Priority:    string(priority),
		Category:    addCategory,
	}); err != nil {
		return err
	}

	sess, err := openStore()
	if err != nil {
		return err
	}
	defer sess.release()

	if err := sess.store.Create(title, addDesc, due, priority, addCategory); err != nil {
		return fmt.Errorf("add task: %w", err)
	}

	number := sess.store.Len()
	task := sess.store.List()[number-1]
	if isJSON() {
		return printJSON(cmd.OutOrStdout(), mutationResult{Action: "add", Number: number, Changed: true, Task: &task})
	}
	printInfo(cmd.OutOrStdout(), "Added task %d: %s", number, task.Title)
	return nil
}
