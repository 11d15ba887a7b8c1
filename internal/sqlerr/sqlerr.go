// Package sqlerr classifies database driver errors.
//
// It turns lib/pq SQLSTATE codes and database/sql sentinels into the
// repository error kinds, so callers can switch on errors.Is instead of
// parsing driver messages.
package sqlerr
