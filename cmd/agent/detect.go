package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Yashcodes04/codementor-project/internal/config"
	"github.com/Yashcodes04/codementor-project/internal/detector"
	"github.com/spf13/cobra"
)

var detectHTMLFile string

var detectCmd = &cobra.Command{
	Use:   "detect <url>",
	Short: "Detect the problem on a page and print it as JSON",
	Long: `detect runs one-shot detection. By default it opens the url in a
headless browser; with --html it reads a saved page instead and only
uses the url for classification.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		pageURL := args[0]

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		var source detector.PageSource
		if detectHTMLFile != "" {
			f, err := os.Open(detectHTMLFile)
			if err != nil {
				return fmt.Errorf("cannot open html file, %w", err)
			}
			defer f.Close()

			static, err := detector.NewStaticSource(f)
			if err != nil {
				return err
			}
			source = static
		} else {
			chrome, err := detector.NewChromeSource(ctx, cfg.Headless)
			if err != nil {
				return fmt.Errorf("cannot start browser, %w", err)
			}
			defer chrome.Close()

			if err := chrome.Navigate(ctx, pageURL); err != nil {
				return fmt.Errorf("cannot open url, %w", err)
			}
			source = chrome
		}

		det := detector.New(source)
		det.SelectorWait = cfg.SelectorWait()

		record, err := det.Detect(ctx, pageURL)
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(record, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

func init() {
	detectCmd.Flags().StringVar(&detectHTMLFile, "html", "", "detect from a saved html file instead of a live page")
}
