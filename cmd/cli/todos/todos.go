package todos

import (
	"fmt"
	"net/url"

	"github.com/crucial707/todo-api/cmd/cli/client"
	"github.com/crucial707/todo-api/cmd/cli/output"
	"github.com/spf13/cobra"
)

// ==========================
// Init Todos
// ==========================
func InitTodos(rootCmd *cobra.Command) {
	todosCmd := &cobra.Command{
		Use:   "todos",
		Short: "Manage todos",
	}

	todosCmd.AddCommand(
		addTodoCmd(),
		deleteTodoCmd(),
	)

	rootCmd.AddCommand(todosCmd)
}

// ==========================
// ADD
// ==========================
func addTodoCmd() *cobra.Command {
	var content string
	var userID int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a todo for a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := client.Call("POST", "/todos", map[string]interface{}{
				"content": content,
				"userId":  userID,
			})
			if err != nil {
				return fmt.Errorf("failed to add todo: %w", err)
			}

			var todo struct {
				ID      int    `json:"id"`
				Content string `json:"content"`
				UserID  int    `json:"userId"`
			}
			if err := env.DecodeData(&todo); err != nil {
				return err
			}

			output.RenderTable(cmd.OutOrStdout(),
				[]string{"ID", "Content", "User ID"},
				[][]interface{}{{todo.ID, todo.Content, todo.UserID}})
			return nil
		},
	}

	cmd.Flags().StringVar(&content, "content", "", "todo text")
	cmd.Flags().IntVar(&userID, "user-id", 0, "owning user id")
	_ = cmd.MarkFlagRequired("user-id")

	return cmd
}

// ==========================
// DELETE
// ==========================
func deleteTodoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a todo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// the server decides whether the id is valid
			env, err := client.Call("DELETE", "/todos/"+url.PathEscape(args[0]), nil)
			if err != nil {
				return fmt.Errorf("failed to delete todo: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Todo %d deleted.\n", env.TodoID)
			return nil
		},
	}
}
