package config_test

import (
	"context"
	"os"
	"testing"

	"github.com/alumnihub/matchrank/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8090")
				convey.So(cfg.RemoteEnabled, convey.ShouldBeFalse)
				convey.So(cfg.TopJobsLimit, convey.ShouldEqual, 5)
				convey.So(cfg.AlumniLimit, convey.ShouldEqual, 20)
				convey.So(cfg.FeedLimit, convey.ShouldEqual, 50)
				convey.So(cfg.MinJobScore, convey.ShouldEqual, 30)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("MATCHRANK_ADDR", ":8080")
			_ = os.Setenv("MATCHRANK_REMOTE_ENABLED", "true")
			_ = os.Setenv("MATCHRANK_REMOTE_URL", "http://scorer:5000/score")
			_ = os.Setenv("MATCHRANK_TOP_JOBS_LIMIT", "3")
			_ = os.Setenv("MATCHRANK_MIN_JOB_SCORE", "0")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.RemoteEnabled, convey.ShouldBeTrue)
				convey.So(cfg.RemoteURL, convey.ShouldEqual, "http://scorer:5000/score")
				convey.So(cfg.TopJobsLimit, convey.ShouldEqual, 3)
				convey.So(cfg.MinJobScore, convey.ShouldEqual, 0)
			})
		})

		convey.Convey("When loading config with YAML file", func() {
			yamlContent := `
addr: ":9090"
remote_enabled: true
remote_url: "http://scorer:5000/score"
remote_pairwise: true
remote_timeout_ms: 2000
skill_weight: 0.7
branch_weight: 0.3
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("MATCHRANK_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load from YAML file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.RemotePairwise, convey.ShouldBeTrue)
				convey.So(cfg.RemoteTimeoutMS, convey.ShouldEqual, 2000)
				convey.So(cfg.SkillWeight, convey.ShouldEqual, 0.7)
				convey.So(cfg.BranchWeight, convey.ShouldEqual, 0.3)
			})
		})

		convey.Convey("When loading config with both file and environment variables", func() {
			yamlContent := `
addr: ":9090"
alumni_limit: 10
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("MATCHRANK_CONFIG", tmpFile)
			_ = os.Setenv("MATCHRANK_ADDR", ":8080")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then environment variables should override file values", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.AlumniLimit, convey.ShouldEqual, 10)
				convey.So(cfg.FeedLimit, convey.ShouldEqual, 50)
			})
		})

		convey.Convey("When loading config with invalid YAML file", func() {
			tmpFile := createTempConfigFile(`invalid: yaml: content: [`)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("MATCHRANK_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err, convey.ShouldWrap, config.ErrLoadConfig)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with non-existent file", func() {
			_ = os.Setenv("MATCHRANK_CONFIG", "/non/existent/file.yaml")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with empty addr", func() {
			_ = os.Setenv("MATCHRANK_ADDR", "")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err, convey.ShouldWrap, config.ErrInvalidConfig)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When remote scoring is enabled without a URL", func() {
			_ = os.Setenv("MATCHRANK_REMOTE_ENABLED", "true")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err.Error(), convey.ShouldContainSubstring, "remote_url")
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with invalid numeric environment variables", func() {
			_ = os.Setenv("MATCHRANK_TOP_JOBS_LIMIT", "not_a_number")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})
	})
}

func clearConfigEnvVars() {
	envVars := []string{
		"MATCHRANK_CONFIG",
		"MATCHRANK_ADDR",
		"MATCHRANK_LOG_LEVEL",
		"MATCHRANK_REMOTE_URL",
		"MATCHRANK_REMOTE_ENABLED",
		"MATCHRANK_REMOTE_PAIRWISE",
		"MATCHRANK_TOP_JOBS_LIMIT",
		"MATCHRANK_ALUMNI_LIMIT",
		"MATCHRANK_FEED_LIMIT",
		"MATCHRANK_MIN_JOB_SCORE",
	}
	for _, envVar := range envVars {
		_ = os.Unsetenv(envVar)
	}
}

func createTempConfigFile(content string) string {
	tmpFile, err := os.CreateTemp("", "matchrank-config-*.yaml")
	if err != nil {
		panic(err)
	}

	if _, err := tmpFile.WriteString(content); err != nil {
		panic(err)
	}

	if err := tmpFile.Close(); err != nil {
		panic(err)
	}

	return tmpFile.Name()
}
