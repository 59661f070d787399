package models

import (
	"strings"

	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Tables lists every model managed by Migrate.
var Tables = []any{
	&Product{},
	&Service{},
	&GalleryItem{},
	&ContactMessage{},
}

// Open connects to the database named by url. postgres:// and postgresql://
// URLs use the postgres driver; sqlite:// URLs and bare paths use sqlite.
// sqlite URLs follow the sqlite:///relative.db and sqlite:////absolute.db forms.
func Open(url string, gormLogger logger.Interface) (*gorm.DB, error) {
	dialector, err := dialectorFor(url)
	if err != nil {
		return nil, err
	}
	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, errors.Wrap(err, "open database")
	}
	if dialector.Name() == "sqlite" {
		// sqlite allows a single writer, and every connection to :memory: is its own database.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, errors.Wrap(err, "open database")
		}
		sqlDB.SetMaxOpenConns(1)
	}
	return db, nil
}

// Close releases the connection pool behind db.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func dialectorFor(url string) (gorm.Dialector, error) {
	switch {
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return postgres.Open(url), nil
	case strings.HasPrefix(url, "sqlite://"):
		// sqlite:///site.db is relative to the working directory and
		// sqlite:////var/site.db is absolute.
		path := strings.TrimPrefix(strings.TrimPrefix(url, "sqlite://"), "/")
		if path == "" {
			return nil, errors.Errorf("sqlite url %q has no path", url)
		}
		return sqlite.Open(path), nil
	case strings.Contains(url, "://"):
		return nil, errors.Errorf("unsupported database url %q", url)
	case url == "":
		return nil, errors.New("database url is empty")
	default:
		return sqlite.Open(url), nil
	}
}

// Migrate creates or updates the schema for all tables.
func Migrate(db *gorm.DB) error {
	return errors.Wrap(db.AutoMigrate(Tables...), "migrate schema")
}
