package main

import (
	"context"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/alumnihub/matchrank/internal/adapters/http/api"
	"github.com/alumnihub/matchrank/internal/adapters/remote"
	"github.com/alumnihub/matchrank/internal/adapters/repository"
	"github.com/alumnihub/matchrank/internal/app"
	"github.com/alumnihub/matchrank/internal/config"
	"github.com/alumnihub/matchrank/internal/domain/scoring"
	"github.com/alumnihub/matchrank/pkg/logger"
	"github.com/alumnihub/matchrank/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/smartystreets/goconvey/convey"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestMainFunction(t *testing.T) {
	convey.Convey("Given the main application", t, func() {
		convey.Convey("When testing configuration loading", func() {
			_ = os.Setenv("MATCHRANK_ADDR", ":8080")
			_ = os.Setenv("MATCHRANK_TOP_JOBS_LIMIT", "3")
			defer func() {
				_ = os.Unsetenv("MATCHRANK_ADDR")
				_ = os.Unsetenv("MATCHRANK_TOP_JOBS_LIMIT")
			}()

			convey.Convey("Then configuration should be loadable", func() {
				ctx := context.Background()
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.TopJobsLimit, convey.ShouldEqual, 3)
			})
		})

		convey.Convey("When testing service creation", func() {
			store := repository.NewMemberStore()

			convey.Convey("Then service should be creatable with default options", func() {
				svc := app.New(store, store)
				convey.So(svc, convey.ShouldNotBeNil)
			})

			convey.Convey("And service should be creatable with the wired options", func() {
				cfg := config.New()
				svc := app.New(store, store,
					app.WithDirectoryWriter(store),
					app.WithTopJobsLimit(cfg.TopJobsLimit),
					app.WithAlumniLimit(cfg.AlumniLimit),
					app.WithFeedLimit(cfg.FeedLimit),
					app.WithMinJobScore(cfg.MinJobScore),
					app.WithScorer(scoring.New(
						scoring.WithBranchBonus(cfg.BranchBonus),
					)),
					app.WithWeights(scoring.Weights{Skill: cfg.SkillWeight, Branch: cfg.BranchWeight}),
				)
				convey.So(svc, convey.ShouldNotBeNil)
				convey.So(svc.GetStats().TopJobsLimit, convey.ShouldEqual, cfg.TopJobsLimit)
				convey.So(svc.GetStats().MinJobScore, convey.ShouldEqual, cfg.MinJobScore)
			})

			convey.Convey("And service should be creatable with a remote scorer", func() {
				client := remote.NewClient("http://scorer:5000/score",
					remote.WithTimeout(2*time.Second),
					remote.WithMaxConcurrency(4),
				)
				svc := app.New(store, store,
					app.WithRemoteScorer(client),
					app.WithRemotePairwise(true),
				)
				convey.So(svc, convey.ShouldNotBeNil)
				convey.So(svc.GetStats().RemoteEnabled, convey.ShouldBeTrue)
				convey.So(svc.GetStats().RemotePairwise, convey.ShouldBeTrue)
			})
		})

		convey.Convey("When testing HTTP server creation", func() {
			store := repository.NewMemberStore()
			svc := app.New(store, store)
			convey.So(svc, convey.ShouldNotBeNil)

			convey.Convey("Then HTTP server should be creatable", func() {
				server := api.NewServer(svc, svc)
				convey.So(server, convey.ShouldNotBeNil)
			})

			convey.Convey("And routes should register on a mux", func() {
				mux := http.NewServeMux()
				api.NewServer(svc, svc).Register(context.Background(), mux)
				convey.So(mux, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When testing metrics initialization", func() {
			convey.Convey("Then metrics manager should be creatable", func() {
				manager := metrics.NewManager(metrics.WithPrometheusRegistry(prometheus.NewRegistry()))
				convey.So(manager, convey.ShouldNotBeNil)
			})
		})
	})
}
