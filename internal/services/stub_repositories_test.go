package services

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"kampadmin/internal/models/db_models"
)

// In-memory repository fakes shared by the service tests. They mirror the
// gorm repositories' contracts, including the nil-on-not-found convention
// and the soft-delete cascade.

type stubUserRepo struct {
	users []*db_models.User
	err   error
}

func (s *stubUserRepo) Insert(_ context.Context, user *db_models.User) error {
	if s.err != nil {
		return s.err
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	s.users = append(s.users, user)
	return nil
}

func (s *stubUserRepo) FindById(_ context.Context, id string) (*db_models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, user := range s.users {
		if user.ID.String() == id {
			return user, nil
		}
	}
	return nil, nil
}

func (s *stubUserRepo) FindByEmail(_ context.Context, email string) (*db_models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, user := range s.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (s *stubUserRepo) ListAll(_ context.Context) ([]db_models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]db_models.User, 0, len(s.users))
	for _, user := range s.users {
		out = append(out, *user)
	}
	return out, nil
}

func (s *stubUserRepo) Save(_ context.Context, user *db_models.User) error {
	if s.err != nil {
		return s.err
	}
	for i := range s.users {
		if s.users[i].ID == user.ID {
			s.users[i] = user
			return nil
		}
	}
	s.users = append(s.users, user)
	return nil
}

type stubCustomerRepo struct {
	customers []*db_models.Customer
	txns      []*db_models.FinancialTransaction
	err       error
}

func (s *stubCustomerRepo) InsertWithTransaction(_ context.Context, customer *db_models.Customer, txn *db_models.FinancialTransaction) error {
	if s.err != nil {
		return s.err
	}
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	s.customers = append(s.customers, customer)
	if txn != nil {
		if txn.ID == uuid.Nil {
			txn.ID = uuid.New()
		}
		txn.CustomerID = customer.ID
		s.txns = append(s.txns, txn)
	}
	return nil
}

func (s *stubCustomerRepo) FindById(_ context.Context, id string) (*db_models.Customer, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, customer := range s.customers {
		if customer.ID.String() == id {
			return customer, nil
		}
	}
	return nil, nil
}

func (s *stubCustomerRepo) ListAll(_ context.Context, includeDeleted bool) ([]db_models.Customer, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]db_models.Customer, 0, len(s.customers))
	for _, customer := range s.customers {
		if customer.IsDeleted && !includeDeleted {
			continue
		}
		out = append(out, *customer)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt > out[j].CreatedAt
	})
	return out, nil
}

func (s *stubCustomerRepo) ListActiveByPartnershipCode(_ context.Context, code string) ([]db_models.Customer, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]db_models.Customer, 0)
	for _, customer := range s.customers {
		if !customer.IsDeleted && customer.PartnershipCode == code {
			out = append(out, *customer)
		}
	}
	return out, nil
}

func (s *stubCustomerRepo) SoftDelete(_ context.Context, customerID uuid.UUID, deletedAt int64) error {
	if s.err != nil {
		return s.err
	}
	for _, customer := range s.customers {
		if customer.ID == customerID && !customer.IsDeleted {
			customer.IsDeleted = true
			at := deletedAt
			customer.DeletedAt = &at
		}
	}
	for _, txn := range s.txns {
		if txn.CustomerID == customerID {
			txn.IsDeleted = true
		}
	}
	return nil
}

type stubCodeRepo struct {
	codes []*db_models.PartnershipCode
	err   error
}

func (s *stubCodeRepo) Insert(_ context.Context, code *db_models.PartnershipCode) error {
	if s.err != nil {
		return s.err
	}
	if code.ID == uuid.Nil {
		code.ID = uuid.New()
	}
	s.codes = append(s.codes, code)
	return nil
}

func (s *stubCodeRepo) FindById(_ context.Context, id string) (*db_models.PartnershipCode, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, code := range s.codes {
		if code.ID.String() == id {
			return code, nil
		}
	}
	return nil, nil
}

func (s *stubCodeRepo) FindByCode(_ context.Context, codeValue string) (*db_models.PartnershipCode, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, code := range s.codes {
		if code.Code == codeValue {
			return code, nil
		}
	}
	return nil, nil
}

func (s *stubCodeRepo) FindActiveByCode(_ context.Context, codeValue string) (*db_models.PartnershipCode, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, code := range s.codes {
		if code.Code == codeValue && code.IsActive {
			return code, nil
		}
	}
	return nil, nil
}

func (s *stubCodeRepo) ListAll(_ context.Context) ([]db_models.PartnershipCode, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]db_models.PartnershipCode, 0, len(s.codes))
	for _, code := range s.codes {
		out = append(out, *code)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt > out[j].CreatedAt
	})
	return out, nil
}

func (s *stubCodeRepo) ListChronological(_ context.Context) ([]db_models.PartnershipCode, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]db_models.PartnershipCode, 0, len(s.codes))
	for _, code := range s.codes {
		out = append(out, *code)
	}
	return out, nil
}

func (s *stubCodeRepo) Save(_ context.Context, code *db_models.PartnershipCode) error {
	if s.err != nil {
		return s.err
	}
	for i := range s.codes {
		if s.codes[i].ID == code.ID {
			s.codes[i] = code
			return nil
		}
	}
	s.codes = append(s.codes, code)
	return nil
}

type stubTransactionRepo struct {
	txns []*db_models.FinancialTransaction
	err  error
}

func (s *stubTransactionRepo) ListActive(_ context.Context) ([]db_models.FinancialTransaction, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]db_models.FinancialTransaction, 0, len(s.txns))
	for _, txn := range s.txns {
		if !txn.IsDeleted {
			out = append(out, *txn)
		}
	}
	return out, nil
}

func (s *stubTransactionRepo) ListActiveByCustomer(_ context.Context, customerID string) ([]db_models.FinancialTransaction, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]db_models.FinancialTransaction, 0)
	for _, txn := range s.txns {
		if !txn.IsDeleted && txn.CustomerID.String() == customerID {
			out = append(out, *txn)
		}
	}
	return out, nil
}
