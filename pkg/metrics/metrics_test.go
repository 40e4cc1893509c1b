package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsOptions(t *testing.T) {
	Convey("Given metrics options", t, func() {
		Convey("When creating options", func() {
			namespaceOpt := WithNamespace("test-namespace")
			subsystemOpt := WithSubsystem("test-subsystem")
			histogramBucketsOpt := WithHistogramBuckets([]float64{0.1, 0.5, 1.0})
			registryOpt := WithPrometheusRegistry(prometheus.NewRegistry())

			Convey("Then they should be valid functions", func() {
				So(namespaceOpt, ShouldNotBeNil)
				So(subsystemOpt, ShouldNotBeNil)
				So(histogramBucketsOpt, ShouldNotBeNil)
				So(registryOpt, ShouldNotBeNil)
			})
		})
	})
}

func TestManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with default options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithPrometheusRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
				So(manager.namespace, ShouldEqual, "matchrank")
				So(manager.subsystem, ShouldEqual, "engine")
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test-namespace"),
				WithSubsystem("test-subsystem"),
				WithHistogramBuckets([]float64{0.1, 0.5, 1.0}),
				WithPrometheusRegistry(registry),
			)

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
				So(manager.namespace, ShouldEqual, "test-namespace")
				So(manager.subsystem, ShouldEqual, "test-subsystem")
			})
		})

		Convey("When options carry empty values", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace(""),
				WithSubsystem(""),
				WithHistogramBuckets(nil),
				WithPrometheusRegistry(registry),
			)

			Convey("Then the defaults are kept", func() {
				So(manager.namespace, ShouldEqual, "matchrank")
				So(manager.subsystem, ShouldEqual, "engine")
			})
		})
	})
}

func TestGlobalRecorders(t *testing.T) {
	Convey("Given the global metrics manager", t, func() {
		Convey("When recording through the package functions", func() {
			RecordRankingServed("jobs")
			RecordRankingLatency("jobs", 12.5)
			RecordCandidatesRanked(7)
			RecordScoringError()
			RecordRemoteCall()
			RecordRemoteFailure()
			RecordRemoteFallback()
			RecordRemoteLatency(40)
			RecordRemotePartialResult()
			RecordHTTPRequest("recommendations", "POST", "200")
			RecordHTTPRequestDuration("recommendations", "POST", "200", 3.2)
			UpdateProfilesTracked(12)
			UpdateCandidatesTracked(30)

			Convey("Then the custom registry exposes the series", func() {
				families, err := GetRegistry().Gather()
				So(err, ShouldBeNil)
				So(families, ShouldNotBeEmpty)

				names := make(map[string]bool, len(families))
				for _, f := range families {
					names[f.GetName()] = true
				}
				So(names["matchrank_engine_rankings_served_total"], ShouldBeTrue)
				So(names["matchrank_engine_remote_scorer_calls_total"], ShouldBeTrue)
				So(names["matchrank_engine_http_requests_total"], ShouldBeTrue)
				So(names["matchrank_engine_profiles_tracked"], ShouldBeTrue)
			})
		})
	})
}
