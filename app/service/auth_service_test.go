package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/TheQuantumSilver/ReceiptVakaGen/app/model"
	"github.com/TheQuantumSilver/ReceiptVakaGen/helper"
)

type fakeAdminRepo struct {
	findFn func(code string) (*model.Admin, error)
}

func (f *fakeAdminRepo) FindByCode(code string) (*model.Admin, error) {
	return f.findFn(code)
}

func newLoginApp(repo *fakeAdminRepo) *fiber.App {
	svc := NewAuthService(repo, "test-secret", zap.NewNop())

	app := fiber.New()
	app.Post("/api/login", svc.Login)
	return app
}

func postLogin(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return resp
}

func TestLoginMissingCode(t *testing.T) {
	app := newLoginApp(&fakeAdminRepo{})

	resp := postLogin(t, app, `{}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected status 400, but got %d", resp.StatusCode)
	}
}

func TestLoginInvalidCode(t *testing.T) {
	app := newLoginApp(&fakeAdminRepo{
		findFn: func(string) (*model.Admin, error) {
			return nil, gorm.ErrRecordNotFound
		},
	})

	resp := postLogin(t, app, `{"adminCode":"wrong"}`)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected status 401, but got %d", resp.StatusCode)
	}
}

func TestLoginStoreError(t *testing.T) {
	app := newLoginApp(&fakeAdminRepo{
		findFn: func(string) (*model.Admin, error) {
			return nil, errors.New("connection reset")
		},
	})

	resp := postLogin(t, app, `{"adminCode":"CORE0-1"}`)
	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("expected status 500, but got %d", resp.StatusCode)
	}
}

func TestLoginIssuesToken(t *testing.T) {
	app := newLoginApp(&fakeAdminRepo{
		findFn: func(code string) (*model.Admin, error) {
			if code != "CORE0-1" {
				return nil, gorm.ErrRecordNotFound
			}
			return &model.Admin{Name: "Asha Rao", Code: code}, nil
		},
	})

	resp := postLogin(t, app, `{"adminCode":"CORE0-1"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, but got %d", resp.StatusCode)
	}

	var body model.LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("unexpected error decoding body: %v", err)
	}

	if body.AdminName != "Asha Rao" {
		t.Errorf("expected admin name in response, but got %q", body.AdminName)
	}

	// The issued token must decode back to the same identity that later
	// seeds confirmed_by.
	claims, err := helper.ValidateToken(body.Token, "test-secret")
	if err != nil {
		t.Fatalf("unexpected error validating issued token: %v", err)
	}
	if claims.AdminName != "Asha Rao" {
		t.Errorf("expected adminName claim %q, but got %q", "Asha Rao", claims.AdminName)
	}
	if claims.AdminCode != "CORE0-1" {
		t.Errorf("expected adminCode claim %q, but got %q", "CORE0-1", claims.AdminCode)
	}
}
