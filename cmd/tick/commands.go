package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tmather/ticklist/todo"
)

// tick add
var addCmd = &cobra.Command{
	Use:   "add [title]...",
	Short: "Add a new todo",
	Long: `Add a new todo.

The title is joined from the arguments. A title that is empty after
trimming whitespace adds nothing and exits successfully.`,
	RunE: runAdd,
}

var addPriority string

// tick list
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List todos",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var (
	listFilter string
	listJSON   bool
)

// tick toggle
var toggleCmd = &cobra.Command{
	Use:   "toggle <id>...",
	Short: "Toggle one or more todos between active and done",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runToggle,
}

// tick edit
var editCmd = &cobra.Command{
	Use:   "edit <id> [title]...",
	Short: "Replace a todo's title",
	Long: `Replace a todo's title.

A new title that is empty after trimming whitespace deletes the todo
instead.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEdit,
}

// tick rm
var rmCmd = &cobra.Command{
	Use:   "rm <id>...",
	Short: "Delete one or more todos",
	Aliases: []string{
		"delete",
	},
	Args: cobra.MinimumNArgs(1),
	RunE: runRm,
}

// tick clear
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all completed todos",
	Args:  cobra.NoArgs,
	RunE:  runClear,
}

// tick priority
var priorityCmd = &cobra.Command{
	Use:   "priority <id>...",
	Short: "Cycle a todo's priority (low, medium, high)",
	Aliases: []string{
		"pri",
	},
	Args: cobra.MinimumNArgs(1),
	RunE: runPriority,
}

func init() {
	rootCmd.AddCommand(addCmd, listCmd, toggleCmd, editCmd, rmCmd, clearCmd, priorityCmd)
	addFilterFlagAliases(listCmd)

	// add flags
	addCmd.Flags().StringVarP(&addPriority, "priority", "p", "", "Priority (low, medium, high)")

	// list flags
	listCmd.Flags().StringVar(&listFilter, "filter", "", "Filter todos (all, active, completed)")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
}

func runAdd(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	title := strings.Join(args, " ")
	created, err := store.Add(title, todo.AddOptions{
		Priority: todo.Priority(addPriority),
	})
	if err != nil {
		return err
	}
	if created == nil {
		return nil
	}

	highlight := idHighlighterForStore(store)
	fmt.Printf("Added %s: %s\n", highlight(created.ID), created.Title)
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("filter") {
		if err := store.SetFilter(todo.Filter(listFilter)); err != nil {
			return err
		}
	}

	todos := store.Filtered()

	if listJSON {
		if todos == nil {
			todos = []todo.Todo{}
		}
		return encodeJSONToStdout(todos)
	}

	printTodoList(store, todos, time.Now())
	return nil
}

func runToggle(cmd *cobra.Command, args []string) error {
	return runTodoAction(args, func(store *todo.Store, id string) (string, bool, error) {
		changed, err := store.Toggle(id)
		if err != nil || !changed {
			return "", changed, err
		}
		item, _ := store.Get(id)
		verb := "Activated"
		if item.Completed {
			verb = "Completed"
		}
		return fmt.Sprintf("%s %%s: %s", verb, item.Title), true, nil
	})
}

func runEdit(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	resolved, err := resolveTodoIDs(store, args[:1])
	if err != nil {
		return err
	}
	id := resolved[0]

	newTitle := strings.Join(args[1:], " ")
	changed, err := store.Edit(id, newTitle)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}

	highlight := idHighlighterForStore(store)
	if item, ok := store.Get(id); ok {
		fmt.Printf("Updated %s: %s\n", highlight(item.ID), item.Title)
	} else {
		fmt.Printf("Deleted %s\n", highlight(id))
	}
	return nil
}

func runRm(cmd *cobra.Command, args []string) error {
	return runTodoAction(args, func(store *todo.Store, id string) (string, bool, error) {
		item, ok := store.Get(id)
		if !ok {
			return "", false, nil
		}
		changed, err := store.Delete(id)
		if err != nil || !changed {
			return "", changed, err
		}
		return fmt.Sprintf("Deleted %%s: %s", item.Title), true, nil
	})
}

func runClear(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	before := store.Len()
	changed, err := store.ClearCompleted()
	if err != nil {
		return err
	}
	if !changed {
		fmt.Println("No completed todos.")
		return nil
	}

	removed := before - store.Len()
	if removed == 1 {
		fmt.Println("Removed 1 completed todo")
	} else {
		fmt.Printf("Removed %d completed todos\n", removed)
	}
	return nil
}

func runPriority(cmd *cobra.Command, args []string) error {
	return runTodoAction(args, func(store *todo.Store, id string) (string, bool, error) {
		changed, err := store.CyclePriority(id)
		if err != nil || !changed {
			return "", changed, err
		}
		item, _ := store.Get(id)
		return fmt.Sprintf("Priority %%s: %s (%s)", item.Title, item.Priority), true, nil
	})
}

// runTodoAction resolves each argument to a full ID, applies the
// action and prints its message. The message format carries a single
// %s for the highlighted ID.
func runTodoAction(args []string, action func(store *todo.Store, id string) (string, bool, error)) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	resolved, err := resolveTodoIDs(store, args)
	if err != nil {
		return err
	}

	highlight := idHighlighterForStore(store)
	for _, id := range resolved {
		format, changed, err := action(store, id)
		if err != nil {
			return err
		}
		if changed {
			fmt.Printf(format+"\n", highlight(id))
		}
	}
	return nil
}
