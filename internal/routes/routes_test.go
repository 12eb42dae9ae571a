package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"golang.org/x/crypto/bcrypt"

	"ATHLETEHUB_BACK-END/internal/config"
	"ATHLETEHUB_BACK-END/internal/handlers"
	"ATHLETEHUB_BACK-END/internal/logger"
	"ATHLETEHUB_BACK-END/internal/media"
	"ATHLETEHUB_BACK-END/internal/middleware"
	"ATHLETEHUB_BACK-END/internal/service"
	"ATHLETEHUB_BACK-END/internal/store"
	"ATHLETEHUB_BACK-END/internal/utils"
)

const photoURL = "https://storage.googleapis.com/test/athlete-hub/photo"

type stubUploader struct{ folder string }

func (s *stubUploader) Upload(_ context.Context, _ []byte, folder string) (string, error) {
	s.folder = folder
	return photoURL, nil
}

func newServer() (*httptest.Server, *stubUploader) {
	st := store.NewMemoryStore()
	up := &stubUploader{}
	tokens := middleware.NewTokenIssuer(&config.JWTConfig{Secret: "test-secret"})
	profiles := service.NewProfileService(st, utils.NewPasswordHasher(bcrypt.MinCost), tokens, media.NewIngestor(up, ""))
	log := logger.Nop()

	mux := http.NewServeMux()
	SetupRoutes(mux, Handlers{
		Auth:     handlers.NewAuthHandler(profiles, log, 1<<20),
		Profile:  handlers.NewProfileHandler(profiles, log, 1<<20),
		Athletes: handlers.NewAthleteHandler(profiles, log),
		Health:   handlers.NewHealthHandler(st),
	}, middleware.NewGate(tokens, st))
	return httptest.NewServer(mux), up
}

func call(srv *httptest.Server, method, path, token string, body any) (*http.Response, map[string]any) {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, srv.URL+path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return send(req)
}

func send(req *http.Request) (*http.Response, map[string]any) {
	resp, err := http.DefaultClient.Do(req)
	So(err, ShouldBeNil)
	defer resp.Body.Close()

	var out map[string]any
	raw := new(bytes.Buffer)
	raw.ReadFrom(resp.Body)
	if err := json.Unmarshal(raw.Bytes(), &out); err != nil {
		out = map[string]any{"_raw": raw.String()}
	}
	return resp, out
}

func callList(srv *httptest.Server, method, path, token string, body any) (*http.Response, []map[string]any) {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, srv.URL+path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	So(err, ShouldBeNil)
	defer resp.Body.Close()

	var out []map[string]any
	So(json.NewDecoder(resp.Body).Decode(&out), ShouldBeNil)
	return resp, out
}

func registerBody() map[string]any {
	return map[string]any{
		"name": "A", "email": "a@x.com", "password": "secret", "age": 20,
		"sport": "soccer", "position": "mid", "location": "NY",
	}
}

func TestAthleteAPI(t *testing.T) {
	Convey("Given a running API", t, func() {
		srv, up := newServer()
		defer srv.Close()

		resp, reg := call(srv, http.MethodPost, "/api/auth/register", "", registerBody())
		So(resp.StatusCode, ShouldEqual, http.StatusCreated)
		token, _ := reg["token"].(string)
		So(token, ShouldNotBeEmpty)
		So(reg["athleteID"], ShouldStartWith, "ATH-")
		So(reg, ShouldNotContainKey, "password")
		So(reg, ShouldNotContainKey, "passwordHash")
		id, _ := reg["_id"].(string)

		Convey("Registering twice is rejected", func() {
			resp, body := call(srv, http.MethodPost, "/api/auth/register", "", registerBody())
			So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
			So(body["message"], ShouldEqual, "User already exists")
		})

		Convey("Malformed JSON gets a fixed message", func() {
			req, _ := http.NewRequest(http.MethodPost, srv.URL+"/api/auth/login", strings.NewReader("{not json"))
			req.Header.Set("Content-Type", "application/json")
			resp, body := send(req)
			So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
			So(body["message"], ShouldEqual, "Request body could not be parsed")
		})

		Convey("Urlencoded login and reset are accepted", func() {
			resp, body := postForm(srv, "/api/auth/login", url.Values{"email": {"a@x.com"}, "password": {"secret"}})
			So(resp.StatusCode, ShouldEqual, http.StatusOK)
			So(body["_id"], ShouldEqual, id)

			resp, _ = postForm(srv, "/api/auth/reset-password", url.Values{
				"email": {"a@x.com"}, "athleteID": {reg["athleteID"].(string)}, "newPassword": {"n2"},
			})
			So(resp.StatusCode, ShouldEqual, http.StatusOK)

			resp, _ = postForm(srv, "/api/auth/login", url.Values{"email": {"a@x.com"}, "password": {"n2"}})
			So(resp.StatusCode, ShouldEqual, http.StatusOK)
		})

		Convey("Missing fields are a bad request", func() {
			b := registerBody()
			delete(b, "sport")
			b["email"] = "c@x.com"
			resp, _ := call(srv, http.MethodPost, "/api/auth/register", "", b)
			So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
		})

		Convey("Login returns the same athlete", func() {
			resp, body := call(srv, http.MethodPost, "/api/auth/login", "", map[string]string{"email": "a@x.com", "password": "secret"})
			So(resp.StatusCode, ShouldEqual, http.StatusOK)
			So(body["_id"], ShouldEqual, id)
			So(body["token"], ShouldNotBeEmpty)
			So(body, ShouldNotContainKey, "passwordHash")

			resp, wrong := call(srv, http.MethodPost, "/api/auth/login", "", map[string]string{"email": "a@x.com", "password": "nope"})
			So(resp.StatusCode, ShouldEqual, http.StatusUnauthorized)
			resp, unknown := call(srv, http.MethodPost, "/api/auth/login", "", map[string]string{"email": "z@x.com", "password": "secret"})
			So(resp.StatusCode, ShouldEqual, http.StatusUnauthorized)
			So(unknown, ShouldResemble, wrong)
		})

		Convey("Protected routes need a token", func() {
			for _, r := range []struct{ method, path string }{
				{http.MethodGet, "/api/athletes/profile/me"},
				{http.MethodPut, "/api/athletes/profile"},
				{http.MethodPost, "/api/athletes/video"},
				{http.MethodDelete, "/api/athletes/video/abc"},
			} {
				resp, _ := call(srv, r.method, r.path, "", map[string]string{})
				So(resp.StatusCode, ShouldEqual, http.StatusUnauthorized)
				resp, _ = call(srv, r.method, r.path, "garbage", map[string]string{})
				So(resp.StatusCode, ShouldEqual, http.StatusUnauthorized)
			}
		})

		Convey("The owner reads and updates their profile", func() {
			resp, me := call(srv, http.MethodGet, "/api/athletes/profile/me", token, nil)
			So(resp.StatusCode, ShouldEqual, http.StatusOK)
			So(me["email"], ShouldEqual, "a@x.com")
			So(me, ShouldNotContainKey, "passwordHash")

			resp, upd := call(srv, http.MethodPut, "/api/athletes/profile", token, map[string]any{"age": 21, "name": ""})
			So(resp.StatusCode, ShouldEqual, http.StatusOK)
			So(upd["age"], ShouldEqual, float64(21))
			So(upd["name"], ShouldEqual, "A")
			So(upd["athleteID"], ShouldEqual, reg["athleteID"])
			So(upd["token"], ShouldEqual, token)
		})

		Convey("A multipart update uploads the photo", func() {
			var buf bytes.Buffer
			mw := multipart.NewWriter(&buf)
			mw.WriteField("location", "Boston")
			fw, _ := mw.CreateFormFile("profilePhoto", "me.jpg")
			fw.Write([]byte("\xff\xd8\xff\xe0jpeg"))
			mw.Close()

			req, _ := http.NewRequest(http.MethodPut, srv.URL+"/api/athletes/profile", &buf)
			req.Header.Set("Content-Type", mw.FormDataContentType())
			req.Header.Set("Authorization", "Bearer "+token)
			resp, body := send(req)

			So(resp.StatusCode, ShouldEqual, http.StatusOK)
			So(body["profilePhoto"], ShouldEqual, photoURL)
			So(body["location"], ShouldEqual, "Boston")
			So(body["sport"], ShouldEqual, "soccer")
			So(up.folder, ShouldEqual, media.DefaultFolder)
		})

		Convey("Videos are added, listed and removed", func() {
			resp, videos := callList(srv, http.MethodPost, "/api/athletes/video", token, map[string]string{
				"url": "https://youtu.be/abc", "platform": "youtube", "title": "Goals",
			})
			So(resp.StatusCode, ShouldEqual, http.StatusCreated)
			So(len(videos), ShouldEqual, 1)
			videoID, _ := videos[0]["_id"].(string)
			So(videoID, ShouldNotBeEmpty)

			resp, stats := call(srv, http.MethodGet, "/api/athletes/stats/public", "", nil)
			So(resp.StatusCode, ShouldEqual, http.StatusOK)
			So(stats["athletes"], ShouldEqual, float64(1))
			So(stats["videos"], ShouldEqual, float64(1))

			resp, _ = call(srv, http.MethodPost, "/api/athletes/video", token, map[string]string{"url": "https://x", "platform": "vimeo"})
			So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)

			resp, left := callList(srv, http.MethodDelete, "/api/athletes/video/"+videoID, token, nil)
			So(resp.StatusCode, ShouldEqual, http.StatusOK)
			So(left, ShouldBeEmpty)
		})

		Convey("The directory is public", func() {
			resp, list := callList(srv, http.MethodGet, "/api/athletes?sport=SOC", "", nil)
			So(resp.StatusCode, ShouldEqual, http.StatusOK)
			So(len(list), ShouldEqual, 1)
			So(list[0], ShouldNotContainKey, "passwordHash")

			resp, list = callList(srv, http.MethodGet, "/api/athletes?sport=tennis", "", nil)
			So(resp.StatusCode, ShouldEqual, http.StatusOK)
			So(list, ShouldBeEmpty)

			resp, one := call(srv, http.MethodGet, "/api/athletes/"+id, "", nil)
			So(resp.StatusCode, ShouldEqual, http.StatusOK)
			So(one["name"], ShouldEqual, "A")

			resp, _ = call(srv, http.MethodGet, "/api/athletes/not-an-id", "", nil)
			So(resp.StatusCode, ShouldEqual, http.StatusNotFound)
		})

		Convey("Passwords reset with the public id", func() {
			resp, _ := call(srv, http.MethodPost, "/api/auth/reset-password", "", map[string]string{
				"email": "a@x.com", "athleteID": "ATH-000000", "newPassword": "n",
			})
			So(resp.StatusCode, ShouldEqual, http.StatusUnauthorized)

			resp, body := call(srv, http.MethodPost, "/api/auth/reset-password", "", map[string]string{
				"email": "a@x.com", "athleteID": reg["athleteID"].(string), "newPassword": "n",
			})
			So(resp.StatusCode, ShouldEqual, http.StatusOK)
			So(body["message"], ShouldEqual, "Password updated successfully")

			resp, _ = call(srv, http.MethodPost, "/api/auth/login", "", map[string]string{"email": "a@x.com", "password": "n"})
			So(resp.StatusCode, ShouldEqual, http.StatusOK)
		})

		Convey("Health and metrics endpoints respond", func() {
			resp, body := call(srv, http.MethodGet, "/readyz", "", nil)
			So(resp.StatusCode, ShouldEqual, http.StatusOK)
			So(body["status"], ShouldEqual, "ready")

			resp, raw := call(srv, http.MethodGet, "/metrics", "", nil)
			So(resp.StatusCode, ShouldEqual, http.StatusOK)
			So(strings.Contains(raw["_raw"].(string), "athletehub_"), ShouldBeTrue)
		})
	})
}

func postForm(srv *httptest.Server, path string, form url.Values) (*http.Response, map[string]any) {
	req, _ := http.NewRequest(http.MethodPost, srv.URL+path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return send(req)
}

func TestFormRegister(t *testing.T) {
	Convey("An urlencoded registration is accepted", t, func() {
		srv, _ := newServer()
		defer srv.Close()

		resp, body := postForm(srv, "/api/auth/register", url.Values{
			"name": {"C"}, "email": {"c@x.com"}, "password": {"pw"}, "age": {"22"},
			"sport": {"rugby"}, "position": {"wing"}, "location": {"Leeds"},
		})
		So(resp.StatusCode, ShouldEqual, http.StatusCreated)
		So(body["age"], ShouldEqual, float64(22))
		So(body["sport"], ShouldEqual, "rugby")
		So(body["profilePhoto"], ShouldEqual, "")
	})

	Convey("A password over 72 bytes registers and logs in", t, func() {
		srv, _ := newServer()
		defer srv.Close()

		b := registerBody()
		long := strings.Repeat("x", 73)
		b["password"] = long
		resp, _ := call(srv, http.MethodPost, "/api/auth/register", "", b)
		So(resp.StatusCode, ShouldEqual, http.StatusCreated)

		resp, _ = call(srv, http.MethodPost, "/api/auth/login", "", map[string]string{"email": "a@x.com", "password": long})
		So(resp.StatusCode, ShouldEqual, http.StatusOK)
	})
}

func TestMultipartRegister(t *testing.T) {
	Convey("A multipart registration with a photo stores its URL", t, func() {
		srv, _ := newServer()
		defer srv.Close()

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		for k, v := range map[string]string{
			"name": "B", "email": "b@x.com", "password": "pw", "age": "19",
			"sport": "tennis", "position": "singles", "location": "LA",
		} {
			mw.WriteField(k, v)
		}
		fw, _ := mw.CreateFormFile("profilePhoto", "b.png")
		fw.Write([]byte("\x89PNG"))
		mw.Close()

		req, _ := http.NewRequest(http.MethodPost, srv.URL+"/api/auth/register", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		resp, body := send(req)

		So(resp.StatusCode, ShouldEqual, http.StatusCreated)
		So(body["profilePhoto"], ShouldEqual, photoURL)
		So(body["age"], ShouldEqual, float64(19))
		So(body, ShouldNotContainKey, "passwordHash")
	})

	Convey("A non-numeric age is rejected", t, func() {
		srv, _ := newServer()
		defer srv.Close()

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		mw.WriteField("age", "old")
		mw.Close()

		req, _ := http.NewRequest(http.MethodPost, srv.URL+"/api/auth/register", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		resp, _ := send(req)
		So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
	})
}
