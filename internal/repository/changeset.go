package repository

import (
	"maps"
	"slices"

	"github.com/rocketscienceinc/tictactoe-contract/internal/entity"
)

// Changeset collects every write of one call so a store can apply them all or none.
// Setting and deleting the same record are exclusive, the last call wins.
type Changeset struct {
	bindings map[entity.PlayerID]entity.SessionKey
	unbinds  map[entity.PlayerID]struct{}
	sessions map[entity.SessionKey]*entity.Session
	drops    map[entity.SessionKey]struct{}
	stats    map[entity.PlayerID]entity.Stats
}

func NewChangeset() *Changeset {
	return &Changeset{
		bindings: make(map[entity.PlayerID]entity.SessionKey),
		unbinds:  make(map[entity.PlayerID]struct{}),
		sessions: make(map[entity.SessionKey]*entity.Session),
		drops:    make(map[entity.SessionKey]struct{}),
		stats:    make(map[entity.PlayerID]entity.Stats),
	}
}

func (that *Changeset) BindPlayer(id entity.PlayerID, key entity.SessionKey) {
	delete(that.unbinds, id)
	that.bindings[id] = key
}

func (that *Changeset) UnbindPlayer(id entity.PlayerID) {
	delete(that.bindings, id)
	that.unbinds[id] = struct{}{}
}

// PutSession stages a copy, later changes to session are not picked up.
func (that *Changeset) PutSession(session *entity.Session) {
	delete(that.drops, session.Key)
	that.sessions[session.Key] = session.Clone()
}

func (that *Changeset) DropSession(key entity.SessionKey) {
	delete(that.sessions, key)
	that.drops[key] = struct{}{}
}

func (that *Changeset) PutStats(id entity.PlayerID, stats entity.Stats) {
	that.stats[id] = stats
}

// StagedStats - stats written earlier in this changeset.
func (that *Changeset) StagedStats(id entity.PlayerID) (entity.Stats, bool) {
	stats, ok := that.stats[id]
	return stats, ok
}

func (that *Changeset) Bindings() map[entity.PlayerID]entity.SessionKey {
	return maps.Clone(that.bindings)
}

func (that *Changeset) Unbinds() []entity.PlayerID {
	return slices.Sorted(maps.Keys(that.unbinds))
}

func (that *Changeset) Sessions() []*entity.Session {
	keys := slices.Sorted(maps.Keys(that.sessions))

	sessions := make([]*entity.Session, 0, len(keys))
	for _, key := range keys {
		sessions = append(sessions, that.sessions[key].Clone())
	}

	return sessions
}

func (that *Changeset) Drops() []entity.SessionKey {
	return slices.Sorted(maps.Keys(that.drops))
}

func (that *Changeset) Stats() map[entity.PlayerID]entity.Stats {
	return maps.Clone(that.stats)
}

func (that *Changeset) IsEmpty() bool {
	return len(that.bindings)+len(that.unbinds)+len(that.sessions)+len(that.drops)+len(that.stats) == 0
}

// Size - bytes of keys and encoded values the changeset writes, deletions count as zero.
func (that *Changeset) Size() (int64, error) {
	var size int64

	for id, key := range that.bindings {
		size += int64(len(sessionKeyKey(id)) + len(key))
	}

	for key, session := range that.sessions {
		raw, err := EncodeSession(session)
		if err != nil {
			return 0, err
		}
		size += int64(len(sessionKey(key)) + len(raw))
	}

	for id, stats := range that.stats {
		raw, err := EncodeStats(stats)
		if err != nil {
			return 0, err
		}
		size += int64(len(statsKey(id)) + len(raw))
	}

	return size, nil
}
