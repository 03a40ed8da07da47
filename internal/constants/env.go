// Where: cli/internal/constants/env.go
// What: Environment variable naming constants.
// Why: Centralize environment variable names to avoid typos and inconsistencies.
package constants

const (
	// CLI Configuration
	EnvSproutInteractive = "SPROUT_INTERACTIVE"
	EnvSproutNoEmoji     = "SPROUT_NO_EMOJI"

	// Post-generation
	EnvSkipCommit = "SPROUT_SKIP_COMMIT"

	// GitHub profile lookup
	EnvGitHubToken    = "GITHUB_TOKEN"
	EnvGitHubEndpoint = "GITHUB_ENDPOINT"

	// S3 template sources
	EnvS3Endpoint  = "SPROUT_S3_ENDPOINT"
	EnvS3AccessKey = "SPROUT_S3_ACCESS_KEY"
	EnvS3SecretKey = "SPROUT_S3_SECRET_KEY"
	EnvAWSRegion   = "AWS_REGION"
)
