package listing

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

type ListingRepository interface {
	CreateListing(ctx context.Context, l *Listing) error
	GetListingByID(ctx context.Context, id uint) (*Listing, error)
	// FindActive applies the same criteria as Filter in SQL.
	FindActive(ctx context.Context, c Criteria, page, pageSize int) ([]Listing, int64, error)
	UpdateListing(ctx context.Context, l *Listing) error
	DeleteListing(ctx context.Context, id uint) error
	CountActiveByHomemaker(ctx context.Context, homemakerID uint) (int64, error)
}

type listingRepository struct {
	db *gorm.DB
}

func NewListingRepository(db *gorm.DB) ListingRepository {
	return &listingRepository{db: db}
}

func (r *listingRepository) CreateListing(ctx context.Context, l *Listing) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *listingRepository) GetListingByID(ctx context.Context, id uint) (*Listing, error) {
	var l Listing
	if err := r.db.WithContext(ctx).First(&l, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}

func (r *listingRepository) FindActive(ctx context.Context, c Criteria, page, pageSize int) ([]Listing, int64, error) {
	var listings []Listing
	var total int64

	query := r.db.WithContext(ctx).Model(&Listing{}).Where("is_active = ?", true)
	if !isAll(c.Category) {
		query = query.Where("LOWER(category) = ?", strings.ToLower(strings.TrimSpace(c.Category)))
	}
	if !isAll(c.Subcategory) {
		query = query.Where("LOWER(subcategory) = ?", strings.ToLower(strings.TrimSpace(c.Subcategory)))
	}
	if q := strings.ToLower(strings.TrimSpace(c.Search)); q != "" {
		like := "%" + likeEscaper.Replace(q) + "%"
		query = query.Where(`LOWER(title) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\'`, like, like)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := query.Order(orderClause(c.Sort)).Offset(offset).Limit(pageSize).Find(&listings).Error; err != nil {
		return nil, 0, err
	}
	return listings, total, nil
}

// likeEscaper makes LIKE wildcards in a search term match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func orderClause(s SortOrder) string {
	switch ParseSort(string(s)) {
	case SortPriceAsc:
		return "price ASC, id ASC"
	case SortPriceDesc:
		return "price DESC, id ASC"
	case SortRating:
		return "rating DESC, id ASC"
	default:
		return "created_at DESC, id DESC"
	}
}

func (r *listingRepository) UpdateListing(ctx context.Context, l *Listing) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *listingRepository) DeleteListing(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&Listing{}, id).Error
}

func (r *listingRepository) CountActiveByHomemaker(ctx context.Context, homemakerID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&Listing{}).
		Where("homemaker_id = ? AND is_active = ?", homemakerID, true).
		Count(&n).Error
	return n, err
}
