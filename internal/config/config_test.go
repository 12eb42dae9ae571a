package config

import (
	"errors"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLoad(t *testing.T) {
	Convey("Given a JWT secret in the environment", t, func() {
		t.Setenv("JWT_SECRET", "s3cret")

		Convey("Defaults apply to everything else", func() {
			cfg, err := Load()
			So(err, ShouldBeNil)
			So(cfg.Server.Port, ShouldEqual, "8080")
			So(cfg.Server.MaxUploadBytes, ShouldEqual, int64(10<<20))
			So(cfg.Database.Driver, ShouldEqual, "postgres")
			So(cfg.JWT.TokenTTL, ShouldEqual, 30*24*time.Hour)
			So(cfg.Media.Folder, ShouldEqual, "athlete-hub")
			So(cfg.IsMediaConfigured(), ShouldBeFalse)
		})

		Convey("Environment variables override defaults", func() {
			t.Setenv("SERVER_PORT", "9000")
			t.Setenv("DB_DRIVER", "memory")
			t.Setenv("JWT_TTL", "1h")
			t.Setenv("MEDIA_BUCKET", "photos")
			t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example , ,https://b.example ")
			t.Setenv("CORS_ALLOW_CREDENTIALS", "false")
			t.Setenv("DB_MAX_CONNS", "not-a-number")

			cfg, err := Load()
			So(err, ShouldBeNil)
			So(cfg.Server.Port, ShouldEqual, "9000")
			So(cfg.Database.Driver, ShouldEqual, "memory")
			So(cfg.JWT.TokenTTL, ShouldEqual, time.Hour)
			So(cfg.IsMediaConfigured(), ShouldBeTrue)
			So(cfg.CORS.AllowedOrigins, ShouldResemble, []string{"https://a.example", "https://b.example"})
			So(cfg.CORS.AllowCredentials, ShouldBeFalse)
			So(cfg.Database.MaxConns, ShouldEqual, int32(5))
		})

		Convey("An unknown driver is rejected", func() {
			t.Setenv("DB_DRIVER", "mongo")
			_, err := Load()
			So(errors.Is(err, ErrInvalidConfig), ShouldBeTrue)
		})
	})

	Convey("A missing JWT secret is rejected", t, func() {
		t.Setenv("JWT_SECRET", "")
		_, err := Load()
		So(errors.Is(err, ErrInvalidConfig), ShouldBeTrue)
	})
}

func TestGetDSN(t *testing.T) {
	Convey("The DSN is assembled from database settings", t, func() {
		cfg := &Config{Database: DatabaseConfig{
			User: "u", Password: "p", Host: "db", Port: "5432", Name: "athletes",
			SSLMode: "require", ConnTimeout: 10 * time.Second,
		}}
		So(cfg.GetDSN(), ShouldEqual, "postgres://u:p@db:5432/athletes?sslmode=require&connect_timeout=10")
	})
}
