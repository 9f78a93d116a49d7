package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"docreader/internal/inputprocessor"
	"docreader/internal/util"
)

// parseCmd resolves a file, URL, or raw string through the parser chain
// and the chunking core, printing the resulting chunk count and a preview
// of each chunk, grounded on the teacher's PrepareContentInput pipeline
// (content_service.go) now reduced to parse+chunk only.
var parseCmd = &cobra.Command{
	Use:   "parse [file|url|text]",
	Short: "Resolve an input, parse it, and chunk the result",
	Long:  `Auto-detects whether the argument is a local file, an HTTP(S) URL, or raw text, parses it, and prints the chunks the core splitter produces.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		proc := inputprocessor.New(appInstance.Logger)

		resolved, err := proc.Process(ctx, args[0])
		if err != nil {
			return fmt.Errorf("resolve input: %w", err)
		}

		cleaned, err := util.CleanFileContent([]byte(resolved.Body), args[0])
		if err != nil {
			return fmt.Errorf("clean input content: %w", err)
		}

		parsed, err := appInstance.Parser.Parse(ctx, strings.NewReader(cleaned))
		if err != nil {
			return fmt.Errorf("parse input: %w", err)
		}

		chunks := appInstance.Splitter.SplitText(parsed.Text)

		fmt.Printf("Resolved as: %v\n", resolved.Metadata["input_type"])
		fmt.Printf("Content-Type: %s\n", resolved.ContentType)
		fmt.Printf("Chunks: %d\n\n", len(chunks))

		for i, c := range chunks {
			preview := collapseWhitespace(c.Text)
			const maxPreview = 120
			if len(preview) > maxPreview {
				preview = preview[:maxPreview] + "..."
			}
			fmt.Printf("[%d] (%d-%d) %s\n", i+1, c.Start, c.End, preview)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
