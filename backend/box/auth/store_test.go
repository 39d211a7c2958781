package auth

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type StoreTestSuite struct {
	suite.Suite
}

func (s *StoreTestSuite) stores() map[string]Store {
	sqliteStore, err := OpenSQLiteStore(context.Background(), filepath.Join(s.T().TempDir(), "tokens.db"))
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = sqliteStore.Close() })

	return map[string]Store{
		"memory": NewMemoryStore(),
		"sqlite": sqliteStore,
	}
}

func (s *StoreTestSuite) TestLatestEmpty() {
	for name, store := range s.stores() {
		s.Run(name, func() {
			rec, err := store.Latest(context.Background(), "")
			s.Require().NoError(err)
			s.Nil(rec, "an empty store must yield nil without error")
		})
	}
}

func (s *StoreTestSuite) TestInsertAndLatest() {
	base := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	for name, store := range s.stores() {
		s.Run(name, func() {
			older := &TokenRecord{
				AccessToken:  "old-access",
				RefreshToken: "old-refresh",
				ExpiresIn:    3600,
				ExpiresAt:    base.Add(time.Hour),
				CreatedAt:    base,
				UpdatedAt:    base,
			}
			s.Require().NoError(store.Insert(context.Background(), older))
			s.NotZero(older.ID)

			newer := &TokenRecord{
				AccessToken:  "new-access",
				RefreshToken: "new-refresh",
				ExpiresIn:    3600,
				ExpiresAt:    base.Add(2 * time.Hour),
				CreatedAt:    base.Add(time.Minute),
				UpdatedAt:    base.Add(time.Minute),
			}
			s.Require().NoError(store.Insert(context.Background(), newer))

			rec, err := store.Latest(context.Background(), "")
			s.Require().NoError(err)
			s.Require().NotNil(rec)
			s.Equal("new-access", rec.AccessToken, "Latest must prefer the most recently created record")
		})
	}
}

func (s *StoreTestSuite) TestUserKeyIsolation() {
	now := time.Now().Truncate(time.Second)

	for name, store := range s.stores() {
		s.Run(name, func() {
			appWide := &TokenRecord{AccessToken: "app", RefreshToken: "r", ExpiresAt: now, CreatedAt: now, UpdatedAt: now}
			alice := &TokenRecord{UserKey: "alice", AccessToken: "alice-token", RefreshToken: "r", ExpiresAt: now, CreatedAt: now, UpdatedAt: now}
			s.Require().NoError(store.Insert(context.Background(), appWide))
			s.Require().NoError(store.Insert(context.Background(), alice))

			rec, err := store.Latest(context.Background(), "alice")
			s.Require().NoError(err)
			s.Require().NotNil(rec)
			s.Equal("alice-token", rec.AccessToken)

			rec, err = store.Latest(context.Background(), "")
			s.Require().NoError(err)
			s.Require().NotNil(rec)
			s.Equal("app", rec.AccessToken)

			rec, err = store.Latest(context.Background(), "bob")
			s.Require().NoError(err)
			s.Nil(rec)
		})
	}
}

func (s *StoreTestSuite) TestUpdate() {
	now := time.Now().Truncate(time.Second)

	for name, store := range s.stores() {
		s.Run(name, func() {
			rec := &TokenRecord{AccessToken: "a1", RefreshToken: "r1", ExpiresAt: now, CreatedAt: now, UpdatedAt: now}
			s.Require().NoError(store.Insert(context.Background(), rec))

			rec.AccessToken = "a2"
			rec.RefreshToken = "r2"
			rec.ExpiresAt = now.Add(time.Hour)
			rec.UpdatedAt = now.Add(time.Minute)
			s.Require().NoError(store.Update(context.Background(), rec))

			got, err := store.Latest(context.Background(), "")
			s.Require().NoError(err)
			s.Require().NotNil(got)
			s.Equal("a2", got.AccessToken)
			s.Equal("r2", got.RefreshToken)
			s.Equal(now.Add(time.Hour).Unix(), got.ExpiresAt.Unix())
		})
	}
}

func (s *StoreTestSuite) TestUpdateUnknownID() {
	for name, store := range s.stores() {
		s.Run(name, func() {
			err := store.Update(context.Background(), &TokenRecord{ID: 9999, AccessToken: "x", RefreshToken: "y"})
			s.Require().ErrorIs(err, errRecordNotFound)
		})
	}
}

func (s *StoreTestSuite) TestExpired() {
	now := time.Now()
	rec := &TokenRecord{ExpiresAt: now.Add(time.Minute)}
	s.False(rec.Expired(now))
	s.True(rec.Expired(now.Add(time.Minute)))
	s.True(rec.Expired(now.Add(2 * time.Minute)))
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}
