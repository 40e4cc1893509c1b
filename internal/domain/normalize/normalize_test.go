package normalize_test

import (
	"testing"

	"github.com/alumnihub/matchrank/internal/domain/normalize"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSkills(t *testing.T) {
	Convey("Given raw skill input", t, func() {
		Convey("When the input is nil", func() {
			out := normalize.Skills(nil)

			Convey("Then it yields an empty, non-nil set", func() {
				So(out, ShouldNotBeNil)
				So(out, ShouldBeEmpty)
			})
		})

		Convey("When the input repeats a skill with different casing and padding", func() {
			out := normalize.Skills([]string{"React", " react ", "REACT"})

			Convey("Then duplicates collapse to one canonical token", func() {
				So(out, ShouldResemble, []string{"react"})
			})
		})

		Convey("When elements are comma-separated lists", func() {
			out := normalize.Skills([]string{"Python, React", "Node"})

			Convey("Then every token is split out and sorted", func() {
				So(out, ShouldResemble, []string{"node", "python", "react"})
			})
		})

		Convey("When the input contains empty and whitespace-only tokens", func() {
			out := normalize.Skills([]string{"", "  ", "go,,  ,sql"})

			Convey("Then the junk is dropped", func() {
				So(out, ShouldResemble, []string{"go", "sql"})
			})
		})
	})
}

func TestSkillsFromString(t *testing.T) {
	Convey("Given a comma-separated skill string", t, func() {
		Convey("When the string has content", func() {
			out := normalize.SkillsFromString("Java, SQL,java")

			Convey("Then it normalizes like list input", func() {
				So(out, ShouldResemble, []string{"java", "sql"})
			})
		})

		Convey("When the string is empty", func() {
			So(normalize.SkillsFromString(""), ShouldBeEmpty)
		})

		Convey("When the string is only whitespace", func() {
			So(normalize.SkillsFromString("   "), ShouldBeEmpty)
		})
	})
}

func TestBranch(t *testing.T) {
	Convey("Given raw branch input", t, func() {
		Convey("When the branch has casing and padding", func() {
			So(normalize.Branch("  Computer Science "), ShouldEqual, "computer science")
		})

		Convey("When the branch is empty", func() {
			So(normalize.Branch(""), ShouldEqual, "")
		})
	})
}
