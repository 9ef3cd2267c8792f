package services

import (
	"workforce_backend/internal/models"
	"workforce_backend/internal/repositories"
	"workforce_backend/internal/services/dto"
)

type BankService interface {
	FetchOne(id string) (*models.Bank, error)
	FetchAll(skip, limit int) ([]models.Bank, error)
	Search(parameter, keyword string, skip, limit int) ([]models.Bank, error)
	Create(req *dto.BankCreateRequest) (*models.Bank, error)
	Update(req *dto.BankUpdateRequest) (*models.Bank, error)
	Delete(id string) error
}

type BankServiceImpl struct {
	banks        *repositories.Repository[models.Bank]
	accountTypes *repositories.Repository[models.AccountType]
}

func NewBankService(
	banks *repositories.Repository[models.Bank],
	accountTypes *repositories.Repository[models.AccountType],
) BankService {
	return &BankServiceImpl{banks: banks, accountTypes: accountTypes}
}

func (s *BankServiceImpl) FetchOne(id string) (*models.Bank, error) {
	return s.banks.Get(id)
}

func (s *BankServiceImpl) FetchAll(skip, limit int) ([]models.Bank, error) {
	return s.banks.GetMulti(skip, limit)
}

func (s *BankServiceImpl) Search(parameter, keyword string, skip, limit int) ([]models.Bank, error) {
	return s.banks.SearchByParameter(parameter, keyword, skip, limit)
}

func (s *BankServiceImpl) Create(req *dto.BankCreateRequest) (*models.Bank, error) {
	if _, err := s.accountTypes.Get(req.AccountTypeID); err != nil {
		return nil, err
	}
	bank := &models.Bank{
		Name:          req.Name,
		Edrpou:        req.Edrpou,
		Mfo:           req.Mfo,
		Iban:          req.Iban,
		Card:          req.Card,
		AccountTypeID: req.AccountTypeID,
	}
	if err := s.banks.Create(bank); err != nil {
		return nil, err
	}
	return bank, nil
}

func (s *BankServiceImpl) Update(req *dto.BankUpdateRequest) (*models.Bank, error) {
	bank, err := s.banks.Get(req.ID)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Edrpou != nil {
		fields["edrpou"] = *req.Edrpou
	}
	if req.Mfo != nil {
		fields["mfo"] = *req.Mfo
	}
	if req.Iban != nil {
		fields["iban"] = *req.Iban
	}
	if req.Card != nil {
		fields["card"] = *req.Card
	}
	if req.AccountTypeID != nil {
		if _, err := s.accountTypes.Get(*req.AccountTypeID); err != nil {
			return nil, err
		}
		fields["account_type_id"] = *req.AccountTypeID
	}

	if err := s.banks.Update(bank, fields); err != nil {
		return nil, err
	}
	return s.banks.Get(req.ID)
}

func (s *BankServiceImpl) Delete(id string) error {
	return s.banks.Delete(id)
}
