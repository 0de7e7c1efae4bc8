package service

import (
	"context"

	"github.com/Animesh0711/DailyEase/internal/domain"
	"github.com/Animesh0711/DailyEase/internal/repository"
	"github.com/Animesh0711/DailyEase/pkg/logger"
)

// CatalogService интерфейс каталога газет и молочных пакетов
type CatalogService interface {
	ListNewspapers(ctx context.Context) ([]domain.Newspaper, error)
	GetNewspaper(ctx context.Context, id int64) (domain.Newspaper, error)
	ListNewspapersByLanguage(ctx context.Context, language string) ([]domain.Newspaper, error)
	ListNewspapersByGenre(ctx context.Context, genre string) ([]domain.Newspaper, error)
	ListMilkPackages(ctx context.Context) ([]domain.MilkPackage, error)
	GetMilkPackage(ctx context.Context, id int64) (domain.MilkPackage, error)

	CreateNewspaper(ctx context.Context, req domain.NewspaperRequest) (domain.Newspaper, error)
	UpdateNewspaper(ctx context.Context, id int64, req domain.NewspaperRequest) (domain.Newspaper, error)
	CreateMilkPackage(ctx context.Context, req domain.MilkPackageRequest) (domain.MilkPackage, error)
	UpdateMilkPackage(ctx context.Context, id int64, req domain.MilkPackageRequest) (domain.MilkPackage, error)
}

type catalogService struct {
	repo repository.CatalogRepository
	log  *logger.Logger
}

// NewCatalogService создает новый сервис каталога
func NewCatalogService(repo repository.CatalogRepository, log *logger.Logger) CatalogService {
	return &catalogService{repo: repo, log: log}
}

func (s *catalogService) ListNewspapers(ctx context.Context) ([]domain.Newspaper, error) {
	return s.repo.GetActiveNewspapers(ctx)
}

func (s *catalogService) GetNewspaper(ctx context.Context, id int64) (domain.Newspaper, error) {
	return s.repo.GetNewspaperByID(ctx, id)
}

func (s *catalogService) ListNewspapersByLanguage(ctx context.Context, language string) ([]domain.Newspaper, error) {
	return s.repo.GetNewspapersByLanguage(ctx, language)
}

func (s *catalogService) ListNewspapersByGenre(ctx context.Context, genre string) ([]domain.Newspaper, error) {
	return s.repo.GetNewspapersByGenre(ctx, genre)
}

func (s *catalogService) ListMilkPackages(ctx context.Context) ([]domain.MilkPackage, error) {
	return s.repo.GetActiveMilkPackages(ctx)
}

func (s *catalogService) GetMilkPackage(ctx context.Context, id int64) (domain.MilkPackage, error) {
	return s.repo.GetMilkPackageByID(ctx, id)
}

func (s *catalogService) CreateNewspaper(ctx context.Context, req domain.NewspaperRequest) (domain.Newspaper, error) {
	s.log.Debug("Creating newspaper %s", req.Name)

	newspaper, err := s.repo.CreateNewspaper(ctx, domain.Newspaper{
		Name:         req.Name,
		Language:     req.Language,
		Genre:        req.Genre,
		PriceDaily:   req.PriceDaily,
		PriceWeekly:  req.PriceWeekly,
		PriceMonthly: req.PriceMonthly,
		Description:  req.Description,
		IsActive:     true,
	})
	if err != nil {
		return domain.Newspaper{}, err
	}

	s.log.Info("Created newspaper %d (%s)", newspaper.ID, newspaper.Name)
	return newspaper, nil
}

func (s *catalogService) UpdateNewspaper(ctx context.Context, id int64, req domain.NewspaperRequest) (domain.Newspaper, error) {
	s.log.Debug("Updating newspaper %d", id)

	newspaper := domain.Newspaper{
		ID:           id,
		Name:         req.Name,
		Language:     req.Language,
		Genre:        req.Genre,
		PriceDaily:   req.PriceDaily,
		PriceWeekly:  req.PriceWeekly,
		PriceMonthly: req.PriceMonthly,
		Description:  req.Description,
		IsActive:     true,
	}
	if err := s.repo.UpdateNewspaper(ctx, newspaper); err != nil {
		return domain.Newspaper{}, err
	}

	return newspaper, nil
}

func (s *catalogService) CreateMilkPackage(ctx context.Context, req domain.MilkPackageRequest) (domain.MilkPackage, error) {
	s.log.Debug("Creating milk package %s", req.Name)

	pkg, err := s.repo.CreateMilkPackage(ctx, domain.MilkPackage{
		Name:         req.Name,
		QuantityML:   req.QuantityML,
		PriceDaily:   req.PriceDaily,
		PriceWeekly:  req.PriceWeekly,
		PriceMonthly: req.PriceMonthly,
		Description:  req.Description,
		IsActive:     true,
	})
	if err != nil {
		return domain.MilkPackage{}, err
	}

	s.log.Info("Created milk package %d (%s)", pkg.ID, pkg.Name)
	return pkg, nil
}

func (s *catalogService) UpdateMilkPackage(ctx context.Context, id int64, req domain.MilkPackageRequest) (domain.MilkPackage, error) {
	s.log.Debug("Updating milk package %d", id)

	pkg := domain.MilkPackage{
		ID:           id,
		Name:         req.Name,
		QuantityML:   req.QuantityML,
		PriceDaily:   req.PriceDaily,
		PriceWeekly:  req.PriceWeekly,
		PriceMonthly: req.PriceMonthly,
		Description:  req.Description,
		IsActive:     true,
	}
	if err := s.repo.UpdateMilkPackage(ctx, pkg); err != nil {
		return domain.MilkPackage{}, err
	}

	return pkg, nil
}
