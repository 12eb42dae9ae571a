package models

import (
	"regexp"
	"testing"

	"github.com/google/uuid"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNewPublicID(t *testing.T) {
	Convey("Given the public id generator", t, func() {
		pattern := regexp.MustCompile(`^ATH-\d{6}$`)

		Convey("Every id matches ATH-###### without a leading zero", func() {
			for i := 0; i < 500; i++ {
				id, err := NewPublicID()
				So(err, ShouldBeNil)
				So(pattern.MatchString(id), ShouldBeTrue)
				So(id[4:5], ShouldNotEqual, "0")
			}
		})
	})
}

func TestPlatform(t *testing.T) {
	Convey("Only youtube and google_drive are valid platforms", t, func() {
		So(PlatformYouTube.Valid(), ShouldBeTrue)
		So(PlatformGoogleDrive.Valid(), ShouldBeTrue)
		So(Platform("vimeo").Valid(), ShouldBeFalse)
		So(Platform("").Valid(), ShouldBeFalse)
		So(Platform("YouTube").Valid(), ShouldBeFalse)
	})
}

func TestSanitized(t *testing.T) {
	Convey("Given an athlete with a password hash and videos", t, func() {
		a := Athlete{
			ID:           uuid.New(),
			PasswordHash: "$2a$10$abc",
			Videos:       []Video{{ID: uuid.New(), URL: "https://youtu.be/x", Platform: PlatformYouTube}},
		}

		s := a.Sanitized()

		Convey("The hash is dropped and the original is untouched", func() {
			So(s.PasswordHash, ShouldBeEmpty)
			So(a.PasswordHash, ShouldEqual, "$2a$10$abc")
		})

		Convey("The video slice is a copy", func() {
			s.Videos[0].Title = "changed"
			So(a.Videos[0].Title, ShouldBeEmpty)
		})
	})

	Convey("A nil video list becomes empty", t, func() {
		So(Athlete{}.Sanitized().Videos, ShouldNotBeNil)
		So(Athlete{}.Sanitized().Videos, ShouldBeEmpty)
	})
}
