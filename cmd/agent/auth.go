package main

import (
	"fmt"
	"time"

	"github.com/Yashcodes04/codementor-project/internal/popup"
	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login <email> <password>",
	Short: "Log in to the CodeMentor backend",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		w, store, _, err := newWorker(ctx)
		if err != nil {
			return err
		}

		controller := popup.NewController(w, store)
		state := controller.Login(ctx, args[0], args[1])
		if state.View != popup.ViewDashboard {
			return fmt.Errorf("login failed: %s", controller.CurrentError(time.Now()))
		}

		fmt.Printf("logged in as %s\n", state.User)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and clear local state",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		w, store, _, err := newWorker(ctx)
		if err != nil {
			return err
		}

		controller := popup.NewController(w, store)
		controller.Logout(ctx)
		fmt.Println("logged out")
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show authentication status",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		w, store, _, err := newWorker(ctx)
		if err != nil {
			return err
		}

		controller := popup.NewController(w, store)
		state := controller.Open(ctx)
		if state.View == popup.ViewDashboard {
			fmt.Printf("authenticated: %s\n", state.User)
		} else {
			fmt.Println("not authenticated")
		}
		return nil
	},
}
