package services

import (
	"context"
	"errors"

	"wavetags.link/models"
	"wavetags.link/pkg/queryparams"
	"wavetags.link/repositories"
)

// BlogServiceError özel servis hataları
type BlogServiceError string

func (e BlogServiceError) Error() string { return string(e) }

const (
	ErrBlogNotFound  BlogServiceError = "No Information found for provided blog"
	ErrBlogsNotFound BlogServiceError = "No blogs found"
	ErrBlogExists    BlogServiceError = "Blog with the same cardid and heading already exists. Choose a different heading."
)

// BlogUpdates kısmi blog güncellemesi; boş alanlar dokunulmaz.
type BlogUpdates struct {
	Heading     string
	Content     string
	Description string
	CoverImage  string
}

// IBlogService kart bloğu yazıları için arayüz.
type IBlogService interface {
	CreateBlog(ctx context.Context, cardID uint, heading, content, description, coverImage string) (*models.Blog, error)
	GetBlogByID(ctx context.Context, id uint) (*models.Blog, error)
	GetBlogs(ctx context.Context) ([]models.Blog, error)
	GetBlogsPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	UpdateBlog(ctx context.Context, id uint, updates BlogUpdates) (*models.Blog, error)
	DeleteBlog(ctx context.Context, id uint) error
}

// BlogService IBlogService arayüzünü uygular.
type BlogService struct {
	repo repositories.IBlogRepository
}

// NewBlogService yeni bir BlogService örneği oluşturur.
func NewBlogService() IBlogService {
	return &BlogService{repo: repositories.NewBlogRepository()}
}

func (s *BlogService) CreateBlog(ctx context.Context, cardID uint, heading, content, description, coverImage string) (*models.Blog, error) {
	// Aynı kart altında başlık benzersizdir.
	if _, err := s.repo.FindByCardIDAndHeading(ctx, cardID, heading); err == nil {
		return nil, ErrBlogExists
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	blog := models.Blog{
		CardID:      cardID,
		Heading:     heading,
		Content:     content,
		Description: description,
		CoverImage:  coverImage,
	}
	if err := s.repo.Create(ctx, &blog); err != nil {
		return nil, err
	}
	return &blog, nil
}

func (s *BlogService) GetBlogByID(ctx context.Context, id uint) (*models.Blog, error) {
	blog, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrBlogNotFound
		}
		return nil, err
	}
	return blog, nil
}

func (s *BlogService) GetBlogs(ctx context.Context) ([]models.Blog, error) {
	blogs, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(blogs) == 0 {
		return nil, ErrBlogsNotFound
	}
	return blogs, nil
}

func (s *BlogService) GetBlogsPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()
	blogs, total, err := s.repo.FindAllPaginated(ctx, params)
	if err != nil {
		return nil, err
	}
	return &queryparams.PaginatedResult{
		Data: blogs,
		Meta: queryparams.PaginationMeta{
			CurrentPage: params.Page,
			PerPage:     params.PerPage,
			TotalItems:  total,
			TotalPages:  queryparams.CalculateTotalPages(total, params.PerPage),
		},
	}, nil
}

func (s *BlogService) UpdateBlog(ctx context.Context, id uint, updates BlogUpdates) (*models.Blog, error) {
	blog, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrBlogNotFound
		}
		return nil, err
	}

	if updates.Heading != "" && updates.Heading != blog.Heading {
		existing, err := s.repo.FindConflicting(ctx, id, blog.CardID, updates.Heading)
		if err != nil && !errors.Is(err, repositories.ErrNotFound) {
			return nil, err
		}
		if existing != nil {
			return nil, ErrBlogExists
		}
		blog.Heading = updates.Heading
	}
	if updates.Content != "" {
		blog.Content = updates.Content
	}
	if updates.Description != "" {
		blog.Description = updates.Description
	}
	if updates.CoverImage != "" {
		blog.CoverImage = updates.CoverImage
	}

	if err := s.repo.Update(ctx, blog); err != nil {
		return nil, err
	}
	return blog, nil
}

func (s *BlogService) DeleteBlog(ctx context.Context, id uint) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrBlogNotFound
	}
	return err
}

var _ IBlogService = (*BlogService)(nil)
