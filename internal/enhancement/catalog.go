package enhancement

// Identifiers of the default enhancement steps.
const (
	StepIdentifierCommitMessages = "commit_messages"
	StepIdentifierMultiRepo      = "multi_repo"
	StepIdentifierErrorHandling  = "error_handling"
	StepIdentifierMonitoring     = "monitoring"
)

// DefaultStepDefinitions returns the default enhancement catalog in execution order.
func DefaultStepDefinitions() []StepDefinition {
	return []StepDefinition{
		{
			Identifier:    StepIdentifierCommitMessages,
			Component:     "Commit Message Enhancement",
			StatusMessage: "Enhanced with AI-powered commit analysis",
			Features: []string{
				"🤖 AI-powered commit type detection",
				"📝 Automatic scope inference from file paths",
				"🔍 Code change analysis for better descriptions",
				"📊 Impact assessment integration",
				"🏷️  Smart tagging based on file content",
			},
		},
		{
			Identifier:    StepIdentifierMultiRepo,
			Component:     "Multi-Repository Support",
			StatusMessage: "Enhanced with parallel processing and dependency management",
			Features: []string{
				"🔄 Parallel repository processing",
				"📦 Dependency-aware commit ordering",
				"🔗 Cross-repository change detection",
				"⚡ Batch operation optimization",
				"🛡️  Atomic multi-repo transactions",
			},
		},
		{
			Identifier:    StepIdentifierErrorHandling,
			Component:     "Error Handling",
			StatusMessage: "Enhanced with intelligent error recovery",
			Features: []string{
				"🔄 Automatic retry with exponential backoff",
				"📋 Detailed error reporting and logging",
				"🛠️  Self-healing capabilities",
				"⚠️  Conflict resolution strategies",
				"📧 Error notification system",
			},
		},
		{
			Identifier:    StepIdentifierMonitoring,
			Component:     "Performance Monitoring",
			StatusMessage: "Enhanced with comprehensive performance tracking",
			Features: []string{
				"📊 Real-time performance metrics",
				"⏱️  Execution time tracking",
				"💾 Memory usage monitoring",
				"🚀 Performance optimization suggestions",
				"📈 Historical performance analysis",
			},
		},
	}
}
