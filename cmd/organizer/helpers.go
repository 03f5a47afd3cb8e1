package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/alejandrosb8/Smart-Desktop/internal/engine"
	"github.com/alejandrosb8/Smart-Desktop/internal/llm"
	"github.com/alejandrosb8/Smart-Desktop/internal/model"
	"github.com/alejandrosb8/Smart-Desktop/internal/organizer"
)

// addRunFlags declares the flags shared by preview and organize.
func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringSlice("categories", nil, "category labels to sort into")
	cmd.Flags().String("mode", string(model.ModeByName), "classification mode (by-name, by-content)")
	cmd.Flags().String("context", "", "free-text guidance for the AI classifier")
	cmd.Flags().StringSlice("exclude-ext", nil, "extensions to exclude (e.g. .exe)")
	cmd.Flags().StringSlice("exclude-file", nil, "file name patterns to exclude (shell wildcards)")
	cmd.Flags().Bool("allow-skip", true, "let the AI answer SKIP for files that should stay")
	cmd.Flags().Bool("thinking", false, "enable dynamic reasoning effort on the AI calls")
}

// runConfig assembles the run configuration, preferring explicit flags
// over config-file values.
func runConfig(cmd *cobra.Command) model.Config {
	return model.Config{
		Categories:        sliceSetting(cmd, "categories", "organizer.categories"),
		Mode:              model.ClassificationMode(stringSetting(cmd, "mode", "organizer.mode")),
		AIContext:         stringSetting(cmd, "context", "organizer.ai_context"),
		ExcludeExtensions: sliceSetting(cmd, "exclude-ext", "organizer.exclude_extensions"),
		ExcludeFiles:      sliceSetting(cmd, "exclude-file", "organizer.exclude_files"),
		AllowAISkip:       boolSetting(cmd, "allow-skip", "organizer.allow_ai_skip"),
		ThinkingEnabled:   boolSetting(cmd, "thinking", "organizer.thinking"),
	}
}

// buildOrganizer wires the AI classifier, the classification engine, and
// the organizer facade from configuration. The returned closer stops the
// classifier's background goroutines.
func buildOrganizer() (*organizer.Organizer, func() error, error) {
	classifier, err := llm.NewClassifier(llm.Config{
		Provider:   viper.GetString("llm.provider"),
		APIKey:     viper.GetString("llm.api_key"),
		Model:      viper.GetString("llm.model"),
		BaseURL:    viper.GetString("llm.base_url"),
		MaxRetries: viper.GetInt("llm.max_retries"),
		RateLimit:  viper.GetInt("llm.rate_limit"),
		Timeout:    viper.GetDuration("llm.timeout"),
	}, nil)
	if err != nil {
		return nil, nil, err
	}

	org := organizer.New(engine.New(classifier, nil), nil)
	return org, classifier.Close, nil
}

func targetDir(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}

func stringSetting(cmd *cobra.Command, flag, key string) string {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetString(flag)
		return v
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	v, _ := cmd.Flags().GetString(flag)
	return v
}

func sliceSetting(cmd *cobra.Command, flag, key string) []string {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetStringSlice(flag)
		return v
	}
	if viper.IsSet(key) {
		return viper.GetStringSlice(key)
	}
	v, _ := cmd.Flags().GetStringSlice(flag)
	return v
}

func boolSetting(cmd *cobra.Command, flag, key string) bool {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetBool(flag)
		return v
	}
	if viper.IsSet(key) {
		return viper.GetBool(key)
	}
	v, _ := cmd.Flags().GetBool(flag)
	return v
}

func printPlan(plan model.Plan) {
	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "FILE\tACTION\tCATEGORY\tREASON")
	for _, item := range plan.Items {
		category := item.Category
		if category == "" {
			category = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", item.Name, item.Action, category, item.Reason)
	}
	_ = w.Flush()

	fmt.Printf("\n%d to move, %d skipped, %d excluded, %d failed\n",
		plan.Count(model.ActionMove),
		plan.Count(model.ActionSkip),
		plan.Count(model.ActionExcluded),
		plan.Count(model.ActionFailed))
}

func printApplyReport(report model.ApplyReport) {
	fmt.Printf("Moved %d file(s), %d skipped, %d excluded.\n",
		len(report.Moved), len(report.Skipped), len(report.Excluded))
	printFailures(report.Failures)
}

func printRevertReport(report model.RevertReport) {
	fmt.Printf("Restored %d file(s).\n", len(report.Restored))
	printFailures(report.Failures)
}

func printCleanReport(report model.CleanReport) {
	for _, dir := range report.RemovedDirs {
		fmt.Printf("Removed empty category folder: %s\n", dir)
	}
	if report.LogRemoved {
		fmt.Println("Movement log removed.")
	}
	printFailures(report.Failures)
}

func printFailures(failures []model.OperationFailure) {
	if len(failures) == 0 {
		return
	}
	fmt.Printf("%d failure(s):\n", len(failures))
	for _, f := range failures {
		fmt.Printf("  %s: %s\n", f.Path, f.Reason)
	}
}

// confirm asks a yes/no question on stdin.
func confirm(question string) bool {
	fmt.Printf("%s [y/N]: ", question)
	var answer string
	if _, err := fmt.Scanln(&answer); err != nil {
		return false
	}
	return answer == "y" || answer == "Y" || answer == "yes"
}

// runTimeout bounds a whole pipeline invocation so a hung provider cannot
// wedge the CLI forever.
const runTimeout = 15 * time.Minute
