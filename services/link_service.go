package services

import (
	"context"
	"errors"

	"wavetags.link/models"
	"wavetags.link/pkg/queryparams"
	"wavetags.link/repositories"
)

// LinkServiceError özel servis hataları
type LinkServiceError string

func (e LinkServiceError) Error() string { return string(e) }

const (
	ErrLinkNotFound     LinkServiceError = "No Information found for provided Link"
	ErrLinksNotFound    LinkServiceError = "No Links found"
	ErrLinkExists       LinkServiceError = "Item already exists. Choose a different name, link."
	ErrLinkNameTaken    LinkServiceError = "Name already exists"
	ErrLinkURLTaken     LinkServiceError = "Url already exists"
	ErrLinkFieldsNeeded LinkServiceError = "Name and link are required in the request body"
)

// LinkUpdates kısmi link güncellemesi; boş alanlar dokunulmaz.
type LinkUpdates struct {
	Name string
	URL  string
	Icon string
}

// ILinkService yönetilen sosyal link kataloğu için arayüz.
type ILinkService interface {
	CreateLink(ctx context.Context, name, url, icon string) (*models.Link, error)
	GetLinkByID(ctx context.Context, id uint) (*models.Link, error)
	GetLinks(ctx context.Context) ([]models.Link, error)
	GetLinksPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	UpdateLink(ctx context.Context, id uint, updates LinkUpdates) (*models.Link, error)
	DeleteLink(ctx context.Context, id uint) error
}

// LinkService ILinkService arayüzünü uygular.
type LinkService struct {
	repo repositories.ILinkRepository
}

// NewLinkService yeni bir LinkService örneği oluşturur.
func NewLinkService() ILinkService {
	return &LinkService{repo: repositories.NewLinkRepository()}
}

func (s *LinkService) CreateLink(ctx context.Context, name, url, icon string) (*models.Link, error) {
	if name == "" || url == "" {
		return nil, ErrLinkFieldsNeeded
	}

	// İsim ve adres katalog genelinde benzersizdir.
	if _, err := s.repo.FindByNameOrURL(ctx, name, url); err == nil {
		return nil, ErrLinkExists
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	link := models.Link{Name: name, URL: url, Icon: icon}
	if err := s.repo.Create(ctx, &link); err != nil {
		return nil, err
	}
	return &link, nil
}

func (s *LinkService) GetLinkByID(ctx context.Context, id uint) (*models.Link, error) {
	link, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrLinkNotFound
		}
		return nil, err
	}
	return link, nil
}

func (s *LinkService) GetLinks(ctx context.Context) ([]models.Link, error) {
	links, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(links) == 0 {
		return nil, ErrLinksNotFound
	}
	return links, nil
}

func (s *LinkService) GetLinksPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()
	links, total, err := s.repo.FindAllPaginated(ctx, params)
	if err != nil {
		return nil, err
	}
	return &queryparams.PaginatedResult{
		Data: links,
		Meta: queryparams.PaginationMeta{
			CurrentPage: params.Page,
			PerPage:     params.PerPage,
			TotalItems:  total,
			TotalPages:  queryparams.CalculateTotalPages(total, params.PerPage),
		},
	}, nil
}

func (s *LinkService) UpdateLink(ctx context.Context, id uint, updates LinkUpdates) (*models.Link, error) {
	link, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrLinkNotFound
		}
		return nil, err
	}

	if updates.Name != "" || updates.URL != "" {
		existing, err := s.repo.FindConflicting(ctx, id, updates.Name, updates.URL)
		if err != nil && !errors.Is(err, repositories.ErrNotFound) {
			return nil, err
		}
		if existing != nil {
			if updates.Name != "" && existing.Name == updates.Name {
				return nil, ErrLinkNameTaken
			}
			return nil, ErrLinkURLTaken
		}
	}

	if updates.Name != "" {
		link.Name = updates.Name
	}
	if updates.URL != "" {
		link.URL = updates.URL
	}
	if updates.Icon != "" {
		link.Icon = updates.Icon
	}

	if err := s.repo.Update(ctx, link); err != nil {
		return nil, err
	}
	return link, nil
}

func (s *LinkService) DeleteLink(ctx context.Context, id uint) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrLinkNotFound
	}
	return err
}

var _ ILinkService = (*LinkService)(nil)
