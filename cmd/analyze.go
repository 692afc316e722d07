package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"stock-genius/internal/dto"
	"stock-genius/internal/repository"
	"stock-genius/internal/service"

	"github.com/spf13/cobra"
)

var analyzeMonths int

var analyzeCmd = &cobra.Command{
	Use:   "analyze <ticker>",
	Short: "Analyze one ticker and print the result as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().IntVarP(&analyzeMonths, "months", "m", dto.DefaultAnalysisMonths, "analysis horizon in months")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	appDep, err := NewAppDependency(ctx)
	if err != nil {
		return fmt.Errorf("failed to create app dependency: %w", err)
	}
	defer appDep.Close()

	req := dto.AnalysisRequest{
		Symbol: strings.TrimSpace(args[0]),
		Months: analyzeMonths,
	}
	if err := appDep.validator.Struct(req); err != nil {
		return fmt.Errorf("invalid analysis request: %w", err)
	}

	repo := repository.NewRepository(appDep.cfg, appDep.cache, appDep.log)
	services := service.NewService(appDep.cfg, appDep.log, repo)

	resp := services.AnalysisService.Analyze(ctx, req)

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(resp)
}
