package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/taxlab/bizcalc/internal/calculation"
	"github.com/taxlab/bizcalc/internal/config"
	"github.com/taxlab/bizcalc/internal/domain"
	"github.com/taxlab/bizcalc/internal/inheritance"
	"github.com/taxlab/bizcalc/internal/output"
	"github.com/taxlab/bizcalc/internal/submission"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// zerologAdapter implements calculation.Logger over zerolog.
type zerologAdapter struct {
	log zerolog.Logger
}

func (z zerologAdapter) Debugf(format string, args ...any) { z.log.Debug().Msgf(format, args...) }
func (z zerologAdapter) Infof(format string, args ...any)  { z.log.Info().Msgf(format, args...) }
func (z zerologAdapter) Warnf(format string, args ...any)  { z.log.Warn().Msgf(format, args...) }
func (z zerologAdapter) Errorf(format string, args ...any) { z.log.Error().Msgf(format, args...) }

func newLogger(debugMode bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if debugMode {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

var rootCmd = &cobra.Command{
	Use:   "bizcalc",
	Short: "Business consulting financial calculators",
	Long:  "Investment feasibility analysis and business-inheritance tax calculators",
}

func engineLogger(cmd *cobra.Command) calculation.Logger {
	debugMode, _ := cmd.Flags().GetBool("debug")
	return zerologAdapter{log: newLogger(debugMode)}
}

func loadDocument(path string) (*config.Document, error) {
	parser := config.NewInputParser()
	return parser.LoadFromFile(path)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [input-file]",
	Short: "Run an investment feasibility analysis",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(args[0])
		if err != nil {
			return err
		}
		if doc.Investment == nil {
			return fmt.Errorf("no investment section in %s", args[0])
		}

		engine := calculation.NewInvestmentEngine(engineLogger(cmd))
		result, err := engine.Analyze(doc.Investment)
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		f := output.GetFormatterByName(format)
		if f == nil {
			return fmt.Errorf("unsupported format: %s", format)
		}
		data, err := f.FormatInvestment(&output.InvestmentReport{Input: doc.Investment, Result: result})
		if err != nil {
			return err
		}
		fmt.Print(string(data))
		return nil
	},
}

var inheritanceCmd = &cobra.Command{
	Use:   "inheritance [input-file]",
	Short: "Calculate business-inheritance tax",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(args[0])
		if err != nil {
			return err
		}
		if doc.Inheritance == nil {
			return fmt.Errorf("no inheritance section in %s", args[0])
		}

		calc := inheritance.NewCalculator(engineLogger(cmd))
		result, err := calc.Calculate(doc.Inheritance)
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		f := output.GetFormatterByName(format)
		if f == nil {
			return fmt.Errorf("unsupported format: %s", format)
		}
		data, err := f.FormatInheritance(&output.InheritanceReport{Input: doc.Inheritance, Result: result})
		if err != nil {
			return err
		}
		fmt.Print(string(data))
		return nil
	},
}

var eligibilityCmd = &cobra.Command{
	Use:   "eligibility [input-file]",
	Short: "Check business-inheritance deduction eligibility",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(args[0])
		if err != nil {
			return err
		}
		if doc.Inheritance == nil {
			return fmt.Errorf("no inheritance section in %s", args[0])
		}

		check := inheritance.CheckEligibility(doc.Inheritance)
		if check.Eligible {
			fmt.Println("가업상속공제 적용 가능")
		} else {
			fmt.Printf("가업상속공제 적용 불가: %s\n", check.FirstFailedCritical().Name)
		}
		for _, req := range check.Requirements {
			mark := "o"
			if !req.Satisfied {
				mark = "x"
			}
			fmt.Printf("  [%s] %s (%s) - %s\n", mark, req.Name, req.Level, req.Detail)
		}
		for _, w := range check.Warnings {
			fmt.Printf("  ! (%s) %s\n", w.Severity, w.Message)
		}
		for _, r := range check.Recommendations {
			fmt.Printf("  * %s\n", r)
		}
		return nil
	},
}

var checklistCmd = &cobra.Command{
	Use:   "checklist [input-file]",
	Short: "Generate the practical filing checklist",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(args[0])
		if err != nil {
			return err
		}
		if doc.Inheritance == nil {
			return fmt.Errorf("no inheritance section in %s", args[0])
		}

		checklist := inheritance.GenerateChecklist(doc.Inheritance)
		done, total := checklist.CompletionCount()
		fmt.Printf("실무 체크리스트 (%d/%d 완료)\n\n", done, total)

		printPhase := func(title string, items []domain.ChecklistItem) {
			fmt.Println(title)
			for _, it := range items {
				mark := " "
				if it.Completed {
					mark = "v"
				}
				fmt.Printf("  [%s] %s\n", mark, it.Title)
				if it.Detail != "" {
					fmt.Printf("      %s\n", it.Detail)
				}
			}
			fmt.Println()
		}
		printPhase("신고 전", checklist.PreFiling)
		printPhase("신고 시", checklist.DuringFiling)
		printPhase("신고 후", checklist.PostFiling)

		fmt.Println("필요 서류")
		for _, d := range checklist.Documents {
			fmt.Printf("  %s: ", d.Category)
			for i, doc := range d.Documents {
				if i > 0 {
					fmt.Print(", ")
				}
				fmt.Print(doc)
			}
			fmt.Println()
		}
		return nil
	},
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Print a policy-loan amortization schedule",
	RunE: func(cmd *cobra.Command, args []string) error {
		principal, _ := cmd.Flags().GetFloat64("principal")
		rate, _ := cmd.Flags().GetFloat64("rate")
		years, _ := cmd.Flags().GetInt("years")
		grace, _ := cmd.Flags().GetInt("grace")
		repayment, _ := cmd.Flags().GetInt("repayment")

		var override *int
		if cmd.Flags().Changed("repayment") {
			override = &repayment
		}

		schedule, err := calculation.ComputeLoanSchedule(principal, rate, years, grace, override)
		if err != nil {
			return err
		}

		fmt.Printf("%-4s %16s %16s\n", "연차", "원금", "이자")
		for i := range schedule.Principal {
			fmt.Printf("%-4d %16s %16s\n", i+1,
				output.FormatKRWFloat(schedule.Principal[i]),
				output.FormatKRWFloat(schedule.Interest[i]))
		}
		return nil
	},
}

var sensitivityCmd = &cobra.Command{
	Use:   "sensitivity [input-file]",
	Short: "Sweep investment parameters and rank their impact on NPV",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(args[0])
		if err != nil {
			return err
		}
		if doc.Investment == nil {
			return fmt.Errorf("no investment section in %s", args[0])
		}

		params := doc.Sensitivity
		if len(params) == 0 {
			params = domain.CommonParameters()
		}

		analyzer := calculation.NewSensitivityAnalyzer(engineLogger(cmd))
		sweeps, err := analyzer.AnalyzeAll(doc.Investment, params)
		if err != nil {
			return err
		}

		for _, sweep := range sweeps {
			fmt.Printf("%s (%s) 탄력도 %.2f [%s]\n", sweep.Parameter.Name, sweep.Parameter.Unit, sweep.Elasticity, sweep.RiskLevel)
			for _, p := range sweep.Points {
				fmt.Printf("  %8.2f -> NPV %s\n", p.Value, output.FormatKRWFloat(p.Result.NPV))
			}
		}
		if most := calculation.MostSensitive(sweeps); most != nil {
			fmt.Printf("\n가장 민감한 변수: %s\n", most.Parameter.Name)
		}
		return nil
	},
}

var submitCmd = &cobra.Command{
	Use:   "submit [lead-file]",
	Short: "Submit a lead form to the gateway, with redis fallback",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		var lead submission.Lead
		if err := yaml.Unmarshal(data, &lead); err != nil {
			return fmt.Errorf("failed to parse lead file: %w", err)
		}

		gateway, _ := cmd.Flags().GetString("gateway")
		redisAddr, _ := cmd.Flags().GetString("redis")
		if gateway == "" {
			return fmt.Errorf("--gateway is required")
		}

		logger := newLogger(false)
		sink := submission.NewHTTPSink(gateway, 10*time.Second, 2)
		var store submission.FallbackStore
		if redisAddr != "" {
			store = submission.NewRedisStore(redisAddr)
		}
		svc := submission.NewService(sink, store, logger)

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		result := svc.Submit(ctx, lead)
		switch result.Status {
		case submission.StatusDelivered:
			fmt.Println("접수 완료")
		case submission.StatusStored:
			fmt.Println("전송 실패, 임시 저장됨 (재전송 대기)")
		case submission.StatusLost:
			return fmt.Errorf("submission failed: %w", result.SinkError)
		}
		return nil
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [input-file]",
	Short: "Validate an input document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := loadDocument(args[0]); err != nil {
			return err
		}
		fmt.Printf("Input file %s is valid\n", args[0])
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "bizcalc %s (commit %s, built %s)\n", version, commit, date)
		if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
			fmt.Fprintln(os.Stdout, bi.Main.Path)
		}
	},
}

func main() {
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	analyzeCmd.Flags().String("format", "console", "Output format (console, json, csv)")
	inheritanceCmd.Flags().String("format", "console", "Output format (console, json, csv)")

	scheduleCmd.Flags().Float64("principal", 0, "Loan principal in KRW")
	scheduleCmd.Flags().Float64("rate", 0, "Annual rate in percent")
	scheduleCmd.Flags().Int("years", 0, "Total term in years")
	scheduleCmd.Flags().Int("grace", 0, "Grace period in years")
	scheduleCmd.Flags().Int("repayment", 0, "Repayment period override in years")

	submitCmd.Flags().String("gateway", "", "Spreadsheet gateway URL")
	submitCmd.Flags().String("redis", "", "Redis address for the fallback store")

	rootCmd.AddCommand(analyzeCmd, inheritanceCmd, eligibilityCmd, checklistCmd,
		scheduleCmd, sensitivityCmd, submitCmd, validateCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
