package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"saylani-welfare/backend/internal/model"
	"saylani-welfare/backend/internal/repository"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users  map[string]*model.User // key: user_id
	nextID int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	for _, u := range m.users {
		if u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	if user.UserID == "" {
		m.nextID++
		user.UserID = fmt.Sprintf("test-user-%d", m.nextID)
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	for _, u := range m.users {
		if u.Email == user.Email && u.UserID != user.UserID {
			return gorm.ErrDuplicatedKey
		}
	}
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) Delete(_ context.Context, id string) error {
	delete(m.users, id)
	return nil
}

func (m *mockUserRepo) ListNonAdmin(_ context.Context) ([]model.User, error) {
	var result []model.User
	for _, u := range m.users {
		if u.Role != model.RoleAdmin {
			result = append(result, *u)
		}
	}
	return result, nil
}

func (m *mockUserRepo) CountByRole(_ context.Context, role model.Role) (int64, error) {
	var count int64
	for _, u := range m.users {
		if u.Role == role {
			count++
		}
	}
	return count, nil
}

// ── Mock BeneficiaryRepository ──

type mockBeneficiaryRepo struct {
	records map[string]*model.Beneficiary // key: beneficiary_id
	nextID  int
}

func newMockBeneficiaryRepo() *mockBeneficiaryRepo {
	return &mockBeneficiaryRepo{records: make(map[string]*model.Beneficiary)}
}

func (m *mockBeneficiaryRepo) Create(_ context.Context, b *model.Beneficiary) error {
	for _, r := range m.records {
		if r.CNIC == b.CNIC || r.TokenID == b.TokenID {
			return gorm.ErrDuplicatedKey
		}
	}
	if b.BeneficiaryID == "" {
		m.nextID++
		b.BeneficiaryID = fmt.Sprintf("test-ben-%d", m.nextID)
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}
	m.records[b.BeneficiaryID] = b
	return nil
}

func (m *mockBeneficiaryRepo) GetByID(_ context.Context, id string) (*model.Beneficiary, error) {
	if b, ok := m.records[id]; ok {
		return b, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockBeneficiaryRepo) GetByTokenID(_ context.Context, tokenID string) (*model.Beneficiary, error) {
	for _, b := range m.records {
		if b.TokenID == tokenID {
			return b, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockBeneficiaryRepo) GetByCNIC(_ context.Context, cnic string) (*model.Beneficiary, error) {
	for _, b := range m.records {
		if b.CNIC == cnic {
			return b, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockBeneficiaryRepo) Update(_ context.Context, b *model.Beneficiary) error {
	for _, r := range m.records {
		if r.CNIC == b.CNIC && r.BeneficiaryID != b.BeneficiaryID {
			return gorm.ErrDuplicatedKey
		}
	}
	m.records[b.BeneficiaryID] = b
	return nil
}

func (m *mockBeneficiaryRepo) Delete(_ context.Context, id string) error {
	delete(m.records, id)
	return nil
}

func (m *mockBeneficiaryRepo) List(_ context.Context) ([]model.Beneficiary, error) {
	return m.sortedNewestFirst(m.all()), nil
}

func (m *mockBeneficiaryRepo) Search(_ context.Context, field repository.SearchField, query string, limit int) ([]model.Beneficiary, error) {
	q := strings.ToLower(query)
	var matched []model.Beneficiary
	for _, b := range m.all() {
		var hit bool
		switch field {
		case repository.SearchFieldCNIC:
			hit = strings.Contains(strings.ToLower(b.CNIC), q)
		case repository.SearchFieldName:
			hit = strings.Contains(strings.ToLower(b.Name), q)
		case repository.SearchFieldPhone:
			hit = strings.Contains(strings.ToLower(b.Phone), q)
		default:
			hit = strings.Contains(strings.ToLower(b.CNIC), q) ||
				strings.Contains(strings.ToLower(b.Name), q) ||
				strings.Contains(strings.ToLower(b.Phone), q) ||
				strings.Contains(strings.ToLower(b.TokenID), q)
		}
		if hit {
			matched = append(matched, b)
		}
	}
	matched = m.sortedNewestFirst(matched)
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func (m *mockBeneficiaryRepo) CountOverview(_ context.Context, filter *repository.StatsFilter) (int64, int64, error) {
	var total, returning int64
	for _, b := range m.all() {
		if !matchesFilter(&b, filter, true) {
			continue
		}
		total++
		if b.IsReturning {
			returning++
		}
	}
	return total, returning, nil
}

func (m *mockBeneficiaryRepo) CountByDepartment(_ context.Context, filter *repository.StatsFilter) ([]repository.DepartmentCount, error) {
	counts := make(map[model.Department]*repository.DepartmentCount)
	for _, b := range m.all() {
		if !matchesFilter(&b, filter, false) {
			continue
		}
		c, ok := counts[b.Department]
		if !ok {
			c = &repository.DepartmentCount{Department: b.Department}
			counts[b.Department] = c
		}
		c.Count++
		if b.IsReturning {
			c.ReturningCount++
		} else {
			c.NewCount++
		}
	}
	var result []repository.DepartmentCount
	for _, c := range counts {
		result = append(result, *c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Count > result[j].Count })
	return result, nil
}

func (m *mockBeneficiaryRepo) CountByStatus(_ context.Context, filter *repository.StatsFilter) ([]repository.StatusCount, error) {
	counts := make(map[model.Status]int64)
	for _, b := range m.all() {
		if !matchesFilter(&b, filter, true) {
			continue
		}
		counts[b.Status]++
	}
	var result []repository.StatusCount
	for status, count := range counts {
		result = append(result, repository.StatusCount{Status: status, Count: count})
	}
	return result, nil
}

func (m *mockBeneficiaryRepo) all() []model.Beneficiary {
	result := make([]model.Beneficiary, 0, len(m.records))
	for _, b := range m.records {
		result = append(result, *b)
	}
	return result
}

func (m *mockBeneficiaryRepo) sortedNewestFirst(list []model.Beneficiary) []model.Beneficiary {
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return list
}

func matchesFilter(b *model.Beneficiary, filter *repository.StatsFilter, withDepartment bool) bool {
	if filter == nil {
		return true
	}
	if filter.StartDate != nil && b.CreatedAt.Before(*filter.StartDate) {
		return false
	}
	if filter.EndDate != nil && b.CreatedAt.After(*filter.EndDate) {
		return false
	}
	if withDepartment && filter.Department != "" && string(b.Department) != filter.Department {
		return false
	}
	return true
}

// ── Mock StatusHistoryRepository ──

type mockStatusHistoryRepo struct {
	entries []model.StatusHistory
}

func newMockStatusHistoryRepo() *mockStatusHistoryRepo {
	return &mockStatusHistoryRepo{}
}

func (m *mockStatusHistoryRepo) Append(_ context.Context, entry *model.StatusHistory) error {
	if entry.HistoryID == "" {
		entry.HistoryID = fmt.Sprintf("test-history-%d", len(m.entries)+1)
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	m.entries = append(m.entries, *entry)
	return nil
}

func (m *mockStatusHistoryRepo) ListByBeneficiary(_ context.Context, beneficiaryID string) ([]model.StatusHistory, error) {
	var result []model.StatusHistory
	for _, e := range m.entries {
		if e.BeneficiaryID == beneficiaryID {
			result = append(result, e)
		}
	}
	return result, nil
}

// ── 测试辅助 ──

func newTestRepository() (*repository.Repository, *mockUserRepo, *mockBeneficiaryRepo, *mockStatusHistoryRepo) {
	userRepo := newMockUserRepo()
	benRepo := newMockBeneficiaryRepo()
	historyRepo := newMockStatusHistoryRepo()
	repo := &repository.Repository{
		User:          userRepo,
		Beneficiary:   benRepo,
		StatusHistory: historyRepo,
	}
	return repo, userRepo, benRepo, historyRepo
}
