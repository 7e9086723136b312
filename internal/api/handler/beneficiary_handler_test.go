package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"saylani-welfare/backend/internal/dto"
	"saylani-welfare/backend/internal/service"
)

// stubBeneficiaryService 预设返回值的桩实现
type stubBeneficiaryService struct {
	registerResp *dto.RegisterBeneficiaryResponse
	registerErr  error
	searchResp   *dto.SearchResponse
	lastActor    service.Actor
}

func (s *stubBeneficiaryService) Register(_ context.Context, _ *dto.RegisterBeneficiaryRequest, actor service.Actor) (*dto.RegisterBeneficiaryResponse, error) {
	s.lastActor = actor
	return s.registerResp, s.registerErr
}

func (s *stubBeneficiaryService) UpdateStatus(context.Context, string, *dto.UpdateStatusRequest, service.Actor) (*dto.BeneficiaryResponse, error) {
	return nil, nil
}

func (s *stubBeneficiaryService) Edit(context.Context, string, *dto.EditBeneficiaryRequest, service.Actor) (*dto.BeneficiaryResponse, error) {
	return nil, nil
}

func (s *stubBeneficiaryService) Delete(context.Context, string) error { return nil }

func (s *stubBeneficiaryService) List(context.Context) ([]dto.BeneficiaryResponse, error) {
	return nil, nil
}

func (s *stubBeneficiaryService) GetByTokenID(context.Context, string) (*dto.CaseTokenResponse, error) {
	return nil, nil
}

func (s *stubBeneficiaryService) Search(context.Context, *dto.SearchRequest) (*dto.SearchResponse, error) {
	return s.searchResp, nil
}

// withIdentity 模拟 JWT 中间件注入的用户信息
func withIdentity(userID, name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("user_name", name)
		c.Next()
	}
}

func newBeneficiaryTestEngine(stub *stubBeneficiaryService, authed bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	h := NewBeneficiaryHandler(stub)
	group := r.Group("")
	if authed {
		group.Use(withIdentity("user-1", "前台小李"))
	}
	group.POST("/api/beneficiaries", h.Register)
	group.GET("/api/search", h.Search)
	return r
}

func TestRegisterHandler(t *testing.T) {
	stub := &stubBeneficiaryService{
		registerResp: &dto.RegisterBeneficiaryResponse{
			Beneficiary: dto.BeneficiaryResponse{ID: "ben-1", TokenID: "SYL-123456-789"},
			TokenID:     "SYL-123456-789",
		},
	}
	r := newBeneficiaryTestEngine(stub, true)

	body := `{"name":"Ahmed Ali","cnic":"42101-1234567-1","phone":"0300-1234567","address":"Karachi","purpose":"Medical Assistance"}`
	req := httptest.NewRequest(http.MethodPost, "/api/beneficiaries", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("登记应返回 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			TokenID string `json:"token_id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("解析响应失败: %v", err)
	}
	if !resp.Success {
		t.Error("响应 success 应为 true")
	}
	if resp.Data.TokenID != "SYL-123456-789" {
		t.Errorf("响应 Token 错误: got %s", resp.Data.TokenID)
	}

	// 登记人身份来自上下文注入，不来自请求体
	if stub.lastActor.UserID != "user-1" || stub.lastActor.Name != "前台小李" {
		t.Errorf("登记人身份错误: %+v", stub.lastActor)
	}
}

func TestRegisterHandlerMissingBody(t *testing.T) {
	r := newBeneficiaryTestEngine(&stubBeneficiaryService{}, true)

	req := httptest.NewRequest(http.MethodPost, "/api/beneficiaries", strings.NewReader(`{"name":"Ahmed Ali"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("缺少必填字段应返回 400, got %d", w.Code)
	}
}

func TestRegisterHandlerDuplicateCNIC(t *testing.T) {
	stub := &stubBeneficiaryService{registerErr: service.ErrCNICExists}
	r := newBeneficiaryTestEngine(stub, true)

	body := `{"name":"Ahmed Ali","cnic":"42101-1234567-1","phone":"0300-1234567","address":"Karachi","purpose":"Other"}`
	req := httptest.NewRequest(http.MethodPost, "/api/beneficiaries", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Errorf("重复 CNIC 应返回 409, got %d", w.Code)
	}
}

func TestRegisterHandlerUnauthenticated(t *testing.T) {
	r := newBeneficiaryTestEngine(&stubBeneficiaryService{}, false)

	body := `{"name":"Ahmed Ali","cnic":"42101-1234567-1","phone":"0300-1234567","address":"Karachi","purpose":"Other"}`
	req := httptest.NewRequest(http.MethodPost, "/api/beneficiaries", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	// 上下文缺少用户身份时拒绝处理
	if w.Code != http.StatusUnauthorized {
		t.Errorf("未注入身份应返回 401, got %d", w.Code)
	}
}

func TestSearchHandler(t *testing.T) {
	stub := &stubBeneficiaryService{
		searchResp: &dto.SearchResponse{
			Count: 1,
			List:  []dto.BeneficiaryResponse{{ID: "ben-1", Name: "Ahmed Ali"}},
		},
	}
	r := newBeneficiaryTestEngine(stub, true)

	req := httptest.NewRequest(http.MethodGet, "/api/search?q=ahmed&type=name", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("搜索应返回 200, got %d", w.Code)
	}

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Count int `json:"count"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("解析响应失败: %v", err)
	}
	if !resp.Success || resp.Data.Count != 1 {
		t.Errorf("搜索响应错误: %s", w.Body.String())
	}
}
