package collection

import (
	"database/sql"

	"github.com/fastprodman/pockettrader/internal/repos/collection"
)

var _ collection.Collection = (*collectionRepo)(nil)

type collectionRepo struct{ db *sql.DB }

func New(db *sql.DB) *collectionRepo {
	return &collectionRepo{db: db}
}
