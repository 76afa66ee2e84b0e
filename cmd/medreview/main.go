package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/carelane/medreview"
	"github.com/carelane/medreview/runtime/reviewer"
	"github.com/carelane/medreview/service/relay"
	"github.com/carelane/medreview/service/relay/console"
	"github.com/carelane/medreview/service/source"
	"github.com/carelane/medreview/service/source/yml"
	"github.com/carelane/medreview/tracing"
)

var (
	green  = color.New(color.FgHiGreen).SprintFunc()
	red    = color.New(color.FgHiRed).SprintFunc()
	yellow = color.New(color.FgHiYellow).SprintFunc()
)

var rootCmd = &cobra.Command{
	Use:           "medreview",
	Short:         "Review a treatment plan with human confirmation for risky treatments",
	Long:          "medreview walks a treatment plan in order, approving low-risk treatments\nautomatically and pausing for an explicit clinician confirmation whenever a\ntreatment's risk level requires it.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one review session",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return run(cmd.Context())
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "Config file (default ~/.config/medreview/config.yaml)")

	runCmd.Flags().String("responder", "", "Clinician asked to confirm risky treatments")
	runCmd.Flags().String("plan", "", "Treatment plan YAML URL (defaults to the built-in mock plan)")
	runCmd.Flags().Duration("timeout", 5*time.Minute, "Confirmation wait before a treatment is recorded undecided")
	runCmd.Flags().Bool("include-medium", false, "Require confirmation for medium risk as well")
	runCmd.Flags().String("audit-export", "", "URL receiving the decision trail as JSON lines")
	runCmd.Flags().String("trace", "", "Trace output file (stdout tracing disabled when empty)")
	runCmd.Flags().String("auto", "", "Answer prompts automatically: yes or no (interactive when empty)")

	for _, name := range []string{"responder", "plan", "timeout", "include-medium", "audit-export", "trace", "auto"} {
		_ = viper.BindPFlag(name, runCmd.Flags().Lookup(name))
	}
	rootCmd.AddCommand(runCmd)
}

func initConfig() {
	if cfgFile, _ := rootCmd.PersistentFlags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "medreview"))
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}
	viper.SetEnvPrefix("MEDREVIEW")
	viper.AutomaticEnv()
	viper.SetDefault("responder", "Dr. Smith")
	_ = viper.ReadInConfig()
}

func run(ctx context.Context) error {
	if traceFile := viper.GetString("trace"); traceFile != "" {
		if err := tracing.Init("medreview", "0.1.0", traceFile); err != nil {
			return err
		}
	}

	config := medreview.DefaultConfig()
	config.Responder = viper.GetString("responder")
	config.Confirmation.Timeout = viper.GetDuration("timeout")
	config.Confirmation.IncludeMedium = viper.GetBool("include-medium")
	config.Audit.ExportURL = viper.GetString("audit-export")

	options := []medreview.Option{medreview.WithConfig(config)}
	if planURL := viper.GetString("plan"); planURL != "" {
		var src source.Service = yml.New(planURL)
		options = append(options, medreview.WithSource(src))
	}

	svc, err := medreview.New(options...)
	if err != nil {
		return err
	}

	ctx, stopSignals := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	switch viper.GetString("auto") {
	case "":
		adapter := console.New(svc.Relay())
		go func() { _ = adapter.Run(ctx) }()
	case "yes":
		defer relay.AutoConfirm(ctx, svc.Relay())()
	default:
		defer relay.AutoDecline(ctx, svc.Relay(), viper.GetString("auto"))()
	}

	report, err := svc.Review(ctx)
	if report != nil {
		printSummary(report)
	}
	return err
}

func printSummary(report *reviewer.Report) {
	fmt.Println()
	fmt.Println("===== TREATMENT PLAN SUMMARY =====")

	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeaderAlignment(tw.AlignLeft),
		tablewriter.WithRowAlignment(tw.AlignLeft),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Lines:      tw.LinesNone,
				Separators: tw.SeparatorsNone,
			},
		}),
		tablewriter.WithPadding(tw.Padding{Left: "", Right: "  "}),
	)
	table.Header([]string{"Treatment", "Status", "Approved By", "Approved At"})

	for _, outcome := range report.Outcomes {
		approval := outcome.Treatment.Approval
		status := red("NOT APPROVED")
		approvedBy, approvedAt := "", ""
		switch outcome.Status {
		case reviewer.StatusApproved:
			status = green("APPROVED")
			approvedBy = *approval.ApprovedBy
			approvedAt = approval.ApprovedAt.Format(time.RFC3339)
		case reviewer.StatusUndecided:
			status = yellow("UNDECIDED")
		}
		_ = table.Append([]string{outcome.Treatment.Name, status, approvedBy, approvedAt})
	}
	_ = table.Render()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
