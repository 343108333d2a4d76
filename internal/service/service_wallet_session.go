package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-chain-keeper/internal/keyring"
	"github.com/MKhiriev/go-chain-keeper/internal/logger"
	"github.com/MKhiriev/go-chain-keeper/internal/store"
	"github.com/MKhiriev/go-chain-keeper/models"
)

// ShouldAutoLock reports whether a session idle since lastActivity has
// outlived a timeout of minutes at now. Zero minutes disables auto-lock.
// The timeout is hard: exactly at the deadline the session is still open.
func ShouldAutoLock(lastActivity time.Time, minutes int, now time.Time) bool {
	if minutes <= 0 {
		return false
	}
	return now.Sub(lastActivity) > time.Duration(minutes)*time.Minute
}

// Touch records explicit user activity, pushing the auto-lock deadline.
func (w *walletService) Touch(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, err := w.requireUnlockedLocked(ctx); err != nil {
		return err
	}
	if err := w.sessions.Touch(ctx, w.now()); err != nil {
		return fmt.Errorf("touch session: %w", err)
	}
	return nil
}

// CheckAutoLock evaluates auto-lock and reports whether it locked the
// wallet now.
func (w *walletService) CheckAutoLock(ctx context.Context) (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	wasUnlocked := w.state == models.StateUnlocked
	if err := w.syncLocked(ctx); err != nil {
		return false, err
	}
	return wasUnlocked && w.state == models.StateLocked, nil
}

// syncLocked reconciles the in-memory keyring with the session store:
// a missing snapshot drops the keyring, a snapshot from another session is
// rehydrated, and an expired session is locked.
func (w *walletService) syncLocked(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if w.state == models.StateUnlocking {
		return nil
	}

	snap, err := w.sessions.Load(ctx)
	if errors.Is(err, store.ErrSessionNotFound) {
		if w.ring != nil || w.state == models.StateUnlocked {
			log.Info().Str("func", "*walletService.syncLocked").Msg("session snapshot is gone, dropping keyring")
			w.dropLocked()
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}

	if w.ring == nil || snap.SessionID != w.sessionID {
		ring, err := keyring.Restore(snap.SerializedKeyring, w.params, w.schemes)
		if err != nil {
			log.Err(err).Str("func", "*walletService.syncLocked").Msg("session snapshot cannot be restored, locking")
			if lockErr := w.lockLocked(ctx); lockErr != nil {
				return errors.Join(err, lockErr)
			}
			return fmt.Errorf("rehydrate session: %w", err)
		}
		if w.ring != nil {
			w.ring.Wipe()
		}
		w.ring = ring
		w.sessionID = snap.SessionID
		w.state = models.StateUnlocked
		log.Info().Str("session_id", snap.SessionID).Msg("keyring rehydrated from session snapshot")
	}

	prefs, err := w.vault.LoadPreferences(ctx)
	if err != nil {
		return err
	}
	if ShouldAutoLock(snap.LastActivity(), prefs.AutoLockMinutes, w.now()) {
		log.Info().
			Int("auto_lock_minutes", prefs.AutoLockMinutes).
			Time("last_activity", snap.LastActivity()).
			Msg("auto-locking idle wallet")
		return w.lockLocked(ctx)
	}
	return nil
}

// saveSnapshotLocked writes the current keyring to the session store and
// counts as activity.
// refreshSnapshotLocked republishes the keyring after an account was
// stored. The account is durable by then, so a failed snapshot is only
// logged; peers pick the account up on their next unlock.
func (w *walletService) refreshSnapshotLocked(ctx context.Context, accountID string) {
	if err := w.saveSnapshotLocked(ctx); err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "*walletService.refreshSnapshotLocked").
			Str("account_id", accountID).
			Msg("account stored but session snapshot was not refreshed")
	}
}

func (w *walletService) saveSnapshotLocked(ctx context.Context) error {
	data, err := w.ring.Serialize()
	if err != nil {
		return err
	}
	defer clear(data)

	err = w.sessions.Save(ctx, models.SessionSnapshot{
		SessionID:             w.sessionID,
		SerializedKeyring:     data,
		LastActivityTimestamp: w.now().UnixMilli(),
	})
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}
