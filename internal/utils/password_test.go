package utils

import (
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher(t *testing.T) {
	Convey("Given a bcrypt password hasher", t, func() {
		h := NewPasswordHasher(bcrypt.MinCost)

		Convey("A hash verifies against its own plaintext", func() {
			for _, plain := range []string{"secret", "", "p@ss word", "ünïcödé"} {
				hash, err := h.Hash(plain)
				So(err, ShouldBeNil)
				So(hash, ShouldNotEqual, plain)
				So(h.Verify(plain, hash), ShouldBeTrue)
			}
		})

		Convey("A hash does not verify a different plaintext", func() {
			hash, err := h.Hash("secret")
			So(err, ShouldBeNil)
			So(h.Verify("Secret", hash), ShouldBeFalse)
			So(h.Verify("secret ", hash), ShouldBeFalse)
		})

		Convey("Hashing is salted", func() {
			a, _ := h.Hash("secret")
			b, _ := h.Hash("secret")
			So(a, ShouldNotEqual, b)
		})

		Convey("Passwords longer than 72 bytes hash on their prefix", func() {
			long := strings.Repeat("a", 72)
			hash, err := h.Hash(long + "b")
			So(err, ShouldBeNil)
			So(h.Verify(long+"b", hash), ShouldBeTrue)
			So(h.Verify(long+"c", hash), ShouldBeTrue)
			So(h.Verify(long, hash), ShouldBeTrue)
			So(h.Verify(long[:71], hash), ShouldBeFalse)

			hash, err = h.Hash(strings.Repeat("é", 200))
			So(err, ShouldBeNil)
			So(h.Verify(strings.Repeat("é", 200), hash), ShouldBeTrue)
		})

		Convey("Garbage hashes never verify", func() {
			So(h.Verify("secret", "not-a-hash"), ShouldBeFalse)
			So(h.Verify("secret", ""), ShouldBeFalse)
		})
	})

	Convey("Given the default cost", t, func() {
		h := NewPasswordHasher(0)
		hash, err := h.Hash("secret")
		So(err, ShouldBeNil)

		cost, err := bcrypt.Cost([]byte(hash))
		So(err, ShouldBeNil)
		So(cost, ShouldEqual, DefaultPasswordCost)
	})
}
