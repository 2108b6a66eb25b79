package report

import (
	"errors"

	"go.uber.org/zap"

	"github.com/temirov/automation-reporter/internal/enhancement"
)

const (
	generatorRunnerRequiredMessageConstant = "report generator requires an enhancement runner"
	reportGeneratedMessageConstant         = "automation report generated"
	reportGenerationFailedMessageConstant  = "automation report generation failed"
	logFieldTotalRepositoriesConstant      = "total_repositories"
	logFieldEnhancementCountConstant       = "enhancement_count"
	logFieldWorkspaceStatusConstant        = "workspace_status"
)

// EnhancementRunner executes the enhancement pipeline.
type EnhancementRunner interface {
	RunAll() (enhancement.RunResult, error)
}

// GeneratorDependencies configures the data and collaborators used to build reports.
type GeneratorDependencies struct {
	Runner       EnhancementRunner
	Repositories []string
	Catalog      CatalogConfiguration
	Logger       *zap.Logger
}

// Generator composes reports from the enhancement pipeline and static catalog data.
type Generator struct {
	runner       EnhancementRunner
	repositories []string
	catalog      CatalogConfiguration
	logger       *zap.Logger
}

// NewGenerator constructs a Generator. The repository list and catalog are copied.
func NewGenerator(dependencies GeneratorDependencies) (*Generator, error) {
	if dependencies.Runner == nil {
		return nil, errors.New(generatorRunnerRequiredMessageConstant)
	}

	logger := dependencies.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Generator{
		runner:       dependencies.Runner,
		repositories: append([]string{}, dependencies.Repositories...),
		catalog:      dependencies.Catalog.Sanitize(),
		logger:       logger,
	}, nil
}

// Generate runs the pipeline and merges its statuses into a fresh report.
// Pipeline failures are returned unchanged and no report is produced; the pipeline logs them.
func (generator *Generator) Generate() (Report, error) {
	runResult, runError := generator.runner.RunAll()
	if runError != nil {
		generator.logger.Debug(reportGenerationFailedMessageConstant, zap.Error(runError))
		return Report{}, runError
	}

	generatedReport := Report{
		WorkspaceStatus:    WorkspaceStatus(generator.catalog.WorkspaceStatus),
		TotalRepositories:  len(generator.repositories),
		AutomationFeatures: append([]string{}, generator.catalog.AutomationFeatures...),
		RecentEnhancements: runResult,
		NextImprovements:   append([]string{}, generator.catalog.NextImprovements...),
	}

	generator.logger.Info(
		reportGeneratedMessageConstant,
		zap.String(logFieldWorkspaceStatusConstant, string(generatedReport.WorkspaceStatus)),
		zap.Int(logFieldTotalRepositoriesConstant, generatedReport.TotalRepositories),
		zap.Int(logFieldEnhancementCountConstant, runResult.Len()),
	)

	return generatedReport, nil
}
