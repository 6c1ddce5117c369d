// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/anuraag/pipkin/ent/achievementevent"
	"github.com/anuraag/pipkin/ent/challengeevent"
	"github.com/anuraag/pipkin/ent/cosmeticevent"
	"github.com/anuraag/pipkin/ent/predicate"
	"github.com/anuraag/pipkin/ent/snapshot"
	"github.com/anuraag/pipkin/ent/streakevent"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAchievementEvent = "AchievementEvent"
	TypeChallengeEvent   = "ChallengeEvent"
	TypeCosmeticEvent    = "CosmeticEvent"
	TypeSnapshot         = "Snapshot"
	TypeStreakEvent      = "StreakEvent"
)

// AchievementEventMutation represents an operation that mutates the AchievementEvent nodes in the graph.
type AchievementEventMutation struct {
	config
	op                      Op
	typ                     string
	id                      *int
	sequence                *int64
	addsequence             *int64
	timestamp               *time.Time
	achievement_id          *string
	category                *string
	rarity                  *string
	source                  *string
	cosmetics_granted       *[]string
	appendcosmetics_granted []string
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*AchievementEvent, error)
	predicates              []predicate.AchievementEvent
}

var _ ent.Mutation = (*AchievementEventMutation)(nil)

// achievementeventOption allows management of the mutation configuration using functional options.
type achievementeventOption func(*AchievementEventMutation)

// newAchievementEventMutation creates new mutation for the AchievementEvent entity.
func newAchievementEventMutation(c config, op Op, opts ...achievementeventOption) *AchievementEventMutation {
	m := &AchievementEventMutation{
		config:        c,
		op:            op,
		typ:           TypeAchievementEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAchievementEventID sets the ID field of the mutation.
func withAchievementEventID(id int) achievementeventOption {
	return func(m *AchievementEventMutation) {
		var (
			err   error
			once  sync.Once
			value *AchievementEvent
		)
		m.oldValue = func(ctx context.Context) (*AchievementEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AchievementEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAchievementEvent sets the old AchievementEvent of the mutation.
func withAchievementEvent(node *AchievementEvent) achievementeventOption {
	return func(m *AchievementEventMutation) {
		m.oldValue = func(context.Context) (*AchievementEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AchievementEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AchievementEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AchievementEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AchievementEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AchievementEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *AchievementEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *AchievementEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the AchievementEvent entity.
// If the AchievementEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AchievementEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *AchievementEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *AchievementEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *AchievementEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *AchievementEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *AchievementEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the AchievementEvent entity.
// If the AchievementEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AchievementEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *AchievementEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetAchievementID sets the "achievement_id" field.
func (m *AchievementEventMutation) SetAchievementID(s string) {
	m.achievement_id = &s
}

// AchievementID returns the value of the "achievement_id" field in the mutation.
func (m *AchievementEventMutation) AchievementID() (r string, exists bool) {
	v := m.achievement_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAchievementID returns the old "achievement_id" field's value of the AchievementEvent entity.
// If the AchievementEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AchievementEventMutation) OldAchievementID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAchievementID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAchievementID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAchievementID: %w", err)
	}
	return oldValue.AchievementID, nil
}

// ResetAchievementID resets all changes to the "achievement_id" field.
func (m *AchievementEventMutation) ResetAchievementID() {
	m.achievement_id = nil
}

// SetCategory sets the "category" field.
func (m *AchievementEventMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *AchievementEventMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the AchievementEvent entity.
// If the AchievementEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AchievementEventMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *AchievementEventMutation) ResetCategory() {
	m.category = nil
}

// SetRarity sets the "rarity" field.
func (m *AchievementEventMutation) SetRarity(s string) {
	m.rarity = &s
}

// Rarity returns the value of the "rarity" field in the mutation.
func (m *AchievementEventMutation) Rarity() (r string, exists bool) {
	v := m.rarity
	if v == nil {
		return
	}
	return *v, true
}

// OldRarity returns the old "rarity" field's value of the AchievementEvent entity.
// If the AchievementEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AchievementEventMutation) OldRarity(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRarity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRarity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRarity: %w", err)
	}
	return oldValue.Rarity, nil
}

// ResetRarity resets all changes to the "rarity" field.
func (m *AchievementEventMutation) ResetRarity() {
	m.rarity = nil
}

// SetSource sets the "source" field.
func (m *AchievementEventMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *AchievementEventMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the AchievementEvent entity.
// If the AchievementEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AchievementEventMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *AchievementEventMutation) ResetSource() {
	m.source = nil
}

// SetCosmeticsGranted sets the "cosmetics_granted" field.
func (m *AchievementEventMutation) SetCosmeticsGranted(s []string) {
	m.cosmetics_granted = &s
	m.appendcosmetics_granted = nil
}

// CosmeticsGranted returns the value of the "cosmetics_granted" field in the mutation.
func (m *AchievementEventMutation) CosmeticsGranted() (r []string, exists bool) {
	v := m.cosmetics_granted
	if v == nil {
		return
	}
	return *v, true
}

// OldCosmeticsGranted returns the old "cosmetics_granted" field's value of the AchievementEvent entity.
// If the AchievementEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AchievementEventMutation) OldCosmeticsGranted(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCosmeticsGranted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCosmeticsGranted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCosmeticsGranted: %w", err)
	}
	return oldValue.CosmeticsGranted, nil
}

// AppendCosmeticsGranted adds s to the "cosmetics_granted" field.
func (m *AchievementEventMutation) AppendCosmeticsGranted(s []string) {
	m.appendcosmetics_granted = append(m.appendcosmetics_granted, s...)
}

// AppendedCosmeticsGranted returns the list of values that were appended to the "cosmetics_granted" field in this mutation.
func (m *AchievementEventMutation) AppendedCosmeticsGranted() ([]string, bool) {
	if len(m.appendcosmetics_granted) == 0 {
		return nil, false
	}
	return m.appendcosmetics_granted, true
}

// ClearCosmeticsGranted clears the value of the "cosmetics_granted" field.
func (m *AchievementEventMutation) ClearCosmeticsGranted() {
	m.cosmetics_granted = nil
	m.appendcosmetics_granted = nil
	m.clearedFields[achievementevent.FieldCosmeticsGranted] = struct{}{}
}

// CosmeticsGrantedCleared returns if the "cosmetics_granted" field was cleared in this mutation.
func (m *AchievementEventMutation) CosmeticsGrantedCleared() bool {
	_, ok := m.clearedFields[achievementevent.FieldCosmeticsGranted]
	return ok
}

// ResetCosmeticsGranted resets all changes to the "cosmetics_granted" field.
func (m *AchievementEventMutation) ResetCosmeticsGranted() {
	m.cosmetics_granted = nil
	m.appendcosmetics_granted = nil
	delete(m.clearedFields, achievementevent.FieldCosmeticsGranted)
}

// Where appends a list predicates to the AchievementEventMutation builder.
func (m *AchievementEventMutation) Where(ps ...predicate.AchievementEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AchievementEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AchievementEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AchievementEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AchievementEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AchievementEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AchievementEvent).
func (m *AchievementEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AchievementEventMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.sequence != nil {
		fields = append(fields, achievementevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, achievementevent.FieldTimestamp)
	}
	if m.achievement_id != nil {
		fields = append(fields, achievementevent.FieldAchievementID)
	}
	if m.category != nil {
		fields = append(fields, achievementevent.FieldCategory)
	}
	if m.rarity != nil {
		fields = append(fields, achievementevent.FieldRarity)
	}
	if m.source != nil {
		fields = append(fields, achievementevent.FieldSource)
	}
	if m.cosmetics_granted != nil {
		fields = append(fields, achievementevent.FieldCosmeticsGranted)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AchievementEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case achievementevent.FieldSequence:
		return m.Sequence()
	case achievementevent.FieldTimestamp:
		return m.Timestamp()
	case achievementevent.FieldAchievementID:
		return m.AchievementID()
	case achievementevent.FieldCategory:
		return m.Category()
	case achievementevent.FieldRarity:
		return m.Rarity()
	case achievementevent.FieldSource:
		return m.Source()
	case achievementevent.FieldCosmeticsGranted:
		return m.CosmeticsGranted()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AchievementEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case achievementevent.FieldSequence:
		return m.OldSequence(ctx)
	case achievementevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case achievementevent.FieldAchievementID:
		return m.OldAchievementID(ctx)
	case achievementevent.FieldCategory:
		return m.OldCategory(ctx)
	case achievementevent.FieldRarity:
		return m.OldRarity(ctx)
	case achievementevent.FieldSource:
		return m.OldSource(ctx)
	case achievementevent.FieldCosmeticsGranted:
		return m.OldCosmeticsGranted(ctx)
	}
	return nil, fmt.Errorf("unknown AchievementEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AchievementEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case achievementevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case achievementevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case achievementevent.FieldAchievementID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAchievementID(v)
		return nil
	case achievementevent.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case achievementevent.FieldRarity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRarity(v)
		return nil
	case achievementevent.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case achievementevent.FieldCosmeticsGranted:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCosmeticsGranted(v)
		return nil
	}
	return fmt.Errorf("unknown AchievementEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AchievementEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, achievementevent.FieldSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AchievementEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case achievementevent.FieldSequence:
		return m.AddedSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AchievementEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case achievementevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	}
	return fmt.Errorf("unknown AchievementEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AchievementEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(achievementevent.FieldCosmeticsGranted) {
		fields = append(fields, achievementevent.FieldCosmeticsGranted)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AchievementEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AchievementEventMutation) ClearField(name string) error {
	switch name {
	case achievementevent.FieldCosmeticsGranted:
		m.ClearCosmeticsGranted()
		return nil
	}
	return fmt.Errorf("unknown AchievementEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AchievementEventMutation) ResetField(name string) error {
	switch name {
	case achievementevent.FieldSequence:
		m.ResetSequence()
		return nil
	case achievementevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case achievementevent.FieldAchievementID:
		m.ResetAchievementID()
		return nil
	case achievementevent.FieldCategory:
		m.ResetCategory()
		return nil
	case achievementevent.FieldRarity:
		m.ResetRarity()
		return nil
	case achievementevent.FieldSource:
		m.ResetSource()
		return nil
	case achievementevent.FieldCosmeticsGranted:
		m.ResetCosmeticsGranted()
		return nil
	}
	return fmt.Errorf("unknown AchievementEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AchievementEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AchievementEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AchievementEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AchievementEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AchievementEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AchievementEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AchievementEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AchievementEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AchievementEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AchievementEvent edge %s", name)
}

// ChallengeEventMutation represents an operation that mutates the ChallengeEvent nodes in the graph.
type ChallengeEventMutation struct {
	config
	op              Op
	typ             string
	id              *int
	sequence        *int64
	addsequence     *int64
	timestamp       *time.Time
	challenge_id    *string
	title           *string
	target          *int
	addtarget       *int
	week_start      *string
	bonus_points    *int
	addbonus_points *int
	achievement_id  *string
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*ChallengeEvent, error)
	predicates      []predicate.ChallengeEvent
}

var _ ent.Mutation = (*ChallengeEventMutation)(nil)

// challengeeventOption allows management of the mutation configuration using functional options.
type challengeeventOption func(*ChallengeEventMutation)

// newChallengeEventMutation creates new mutation for the ChallengeEvent entity.
func newChallengeEventMutation(c config, op Op, opts ...challengeeventOption) *ChallengeEventMutation {
	m := &ChallengeEventMutation{
		config:        c,
		op:            op,
		typ:           TypeChallengeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChallengeEventID sets the ID field of the mutation.
func withChallengeEventID(id int) challengeeventOption {
	return func(m *ChallengeEventMutation) {
		var (
			err   error
			once  sync.Once
			value *ChallengeEvent
		)
		m.oldValue = func(ctx context.Context) (*ChallengeEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ChallengeEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChallengeEvent sets the old ChallengeEvent of the mutation.
func withChallengeEvent(node *ChallengeEvent) challengeeventOption {
	return func(m *ChallengeEventMutation) {
		m.oldValue = func(context.Context) (*ChallengeEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChallengeEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChallengeEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChallengeEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChallengeEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ChallengeEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *ChallengeEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *ChallengeEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the ChallengeEvent entity.
// If the ChallengeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChallengeEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *ChallengeEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *ChallengeEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *ChallengeEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *ChallengeEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *ChallengeEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the ChallengeEvent entity.
// If the ChallengeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChallengeEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *ChallengeEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetChallengeID sets the "challenge_id" field.
func (m *ChallengeEventMutation) SetChallengeID(s string) {
	m.challenge_id = &s
}

// ChallengeID returns the value of the "challenge_id" field in the mutation.
func (m *ChallengeEventMutation) ChallengeID() (r string, exists bool) {
	v := m.challenge_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChallengeID returns the old "challenge_id" field's value of the ChallengeEvent entity.
// If the ChallengeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChallengeEventMutation) OldChallengeID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChallengeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChallengeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChallengeID: %w", err)
	}
	return oldValue.ChallengeID, nil
}

// ResetChallengeID resets all changes to the "challenge_id" field.
func (m *ChallengeEventMutation) ResetChallengeID() {
	m.challenge_id = nil
}

// SetTitle sets the "title" field.
func (m *ChallengeEventMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ChallengeEventMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the ChallengeEvent entity.
// If the ChallengeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChallengeEventMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *ChallengeEventMutation) ResetTitle() {
	m.title = nil
}

// SetTarget sets the "target" field.
func (m *ChallengeEventMutation) SetTarget(i int) {
	m.target = &i
	m.addtarget = nil
}

// Target returns the value of the "target" field in the mutation.
func (m *ChallengeEventMutation) Target() (r int, exists bool) {
	v := m.target
	if v == nil {
		return
	}
	return *v, true
}

// OldTarget returns the old "target" field's value of the ChallengeEvent entity.
// If the ChallengeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChallengeEventMutation) OldTarget(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTarget is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTarget requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTarget: %w", err)
	}
	return oldValue.Target, nil
}

// AddTarget adds i to the "target" field.
func (m *ChallengeEventMutation) AddTarget(i int) {
	if m.addtarget != nil {
		*m.addtarget += i
	} else {
		m.addtarget = &i
	}
}

// AddedTarget returns the value that was added to the "target" field in this mutation.
func (m *ChallengeEventMutation) AddedTarget() (r int, exists bool) {
	v := m.addtarget
	if v == nil {
		return
	}
	return *v, true
}

// ResetTarget resets all changes to the "target" field.
func (m *ChallengeEventMutation) ResetTarget() {
	m.target = nil
	m.addtarget = nil
}

// SetWeekStart sets the "week_start" field.
func (m *ChallengeEventMutation) SetWeekStart(s string) {
	m.week_start = &s
}

// WeekStart returns the value of the "week_start" field in the mutation.
func (m *ChallengeEventMutation) WeekStart() (r string, exists bool) {
	v := m.week_start
	if v == nil {
		return
	}
	return *v, true
}

// OldWeekStart returns the old "week_start" field's value of the ChallengeEvent entity.
// If the ChallengeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChallengeEventMutation) OldWeekStart(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeekStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeekStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeekStart: %w", err)
	}
	return oldValue.WeekStart, nil
}

// ResetWeekStart resets all changes to the "week_start" field.
func (m *ChallengeEventMutation) ResetWeekStart() {
	m.week_start = nil
}

// SetBonusPoints sets the "bonus_points" field.
func (m *ChallengeEventMutation) SetBonusPoints(i int) {
	m.bonus_points = &i
	m.addbonus_points = nil
}

// BonusPoints returns the value of the "bonus_points" field in the mutation.
func (m *ChallengeEventMutation) BonusPoints() (r int, exists bool) {
	v := m.bonus_points
	if v == nil {
		return
	}
	return *v, true
}

// OldBonusPoints returns the old "bonus_points" field's value of the ChallengeEvent entity.
// If the ChallengeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChallengeEventMutation) OldBonusPoints(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBonusPoints is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBonusPoints requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBonusPoints: %w", err)
	}
	return oldValue.BonusPoints, nil
}

// AddBonusPoints adds i to the "bonus_points" field.
func (m *ChallengeEventMutation) AddBonusPoints(i int) {
	if m.addbonus_points != nil {
		*m.addbonus_points += i
	} else {
		m.addbonus_points = &i
	}
}

// AddedBonusPoints returns the value that was added to the "bonus_points" field in this mutation.
func (m *ChallengeEventMutation) AddedBonusPoints() (r int, exists bool) {
	v := m.addbonus_points
	if v == nil {
		return
	}
	return *v, true
}

// ResetBonusPoints resets all changes to the "bonus_points" field.
func (m *ChallengeEventMutation) ResetBonusPoints() {
	m.bonus_points = nil
	m.addbonus_points = nil
}

// SetAchievementID sets the "achievement_id" field.
func (m *ChallengeEventMutation) SetAchievementID(s string) {
	m.achievement_id = &s
}

// AchievementID returns the value of the "achievement_id" field in the mutation.
func (m *ChallengeEventMutation) AchievementID() (r string, exists bool) {
	v := m.achievement_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAchievementID returns the old "achievement_id" field's value of the ChallengeEvent entity.
// If the ChallengeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChallengeEventMutation) OldAchievementID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAchievementID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAchievementID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAchievementID: %w", err)
	}
	return oldValue.AchievementID, nil
}

// ClearAchievementID clears the value of the "achievement_id" field.
func (m *ChallengeEventMutation) ClearAchievementID() {
	m.achievement_id = nil
	m.clearedFields[challengeevent.FieldAchievementID] = struct{}{}
}

// AchievementIDCleared returns if the "achievement_id" field was cleared in this mutation.
func (m *ChallengeEventMutation) AchievementIDCleared() bool {
	_, ok := m.clearedFields[challengeevent.FieldAchievementID]
	return ok
}

// ResetAchievementID resets all changes to the "achievement_id" field.
func (m *ChallengeEventMutation) ResetAchievementID() {
	m.achievement_id = nil
	delete(m.clearedFields, challengeevent.FieldAchievementID)
}

// Where appends a list predicates to the ChallengeEventMutation builder.
func (m *ChallengeEventMutation) Where(ps ...predicate.ChallengeEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChallengeEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChallengeEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ChallengeEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChallengeEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChallengeEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ChallengeEvent).
func (m *ChallengeEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChallengeEventMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.sequence != nil {
		fields = append(fields, challengeevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, challengeevent.FieldTimestamp)
	}
	if m.challenge_id != nil {
		fields = append(fields, challengeevent.FieldChallengeID)
	}
	if m.title != nil {
		fields = append(fields, challengeevent.FieldTitle)
	}
	if m.target != nil {
		fields = append(fields, challengeevent.FieldTarget)
	}
	if m.week_start != nil {
		fields = append(fields, challengeevent.FieldWeekStart)
	}
	if m.bonus_points != nil {
		fields = append(fields, challengeevent.FieldBonusPoints)
	}
	if m.achievement_id != nil {
		fields = append(fields, challengeevent.FieldAchievementID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChallengeEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case challengeevent.FieldSequence:
		return m.Sequence()
	case challengeevent.FieldTimestamp:
		return m.Timestamp()
	case challengeevent.FieldChallengeID:
		return m.ChallengeID()
	case challengeevent.FieldTitle:
		return m.Title()
	case challengeevent.FieldTarget:
		return m.Target()
	case challengeevent.FieldWeekStart:
		return m.WeekStart()
	case challengeevent.FieldBonusPoints:
		return m.BonusPoints()
	case challengeevent.FieldAchievementID:
		return m.AchievementID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChallengeEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case challengeevent.FieldSequence:
		return m.OldSequence(ctx)
	case challengeevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case challengeevent.FieldChallengeID:
		return m.OldChallengeID(ctx)
	case challengeevent.FieldTitle:
		return m.OldTitle(ctx)
	case challengeevent.FieldTarget:
		return m.OldTarget(ctx)
	case challengeevent.FieldWeekStart:
		return m.OldWeekStart(ctx)
	case challengeevent.FieldBonusPoints:
		return m.OldBonusPoints(ctx)
	case challengeevent.FieldAchievementID:
		return m.OldAchievementID(ctx)
	}
	return nil, fmt.Errorf("unknown ChallengeEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChallengeEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case challengeevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case challengeevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case challengeevent.FieldChallengeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChallengeID(v)
		return nil
	case challengeevent.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case challengeevent.FieldTarget:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTarget(v)
		return nil
	case challengeevent.FieldWeekStart:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeekStart(v)
		return nil
	case challengeevent.FieldBonusPoints:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBonusPoints(v)
		return nil
	case challengeevent.FieldAchievementID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAchievementID(v)
		return nil
	}
	return fmt.Errorf("unknown ChallengeEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChallengeEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, challengeevent.FieldSequence)
	}
	if m.addtarget != nil {
		fields = append(fields, challengeevent.FieldTarget)
	}
	if m.addbonus_points != nil {
		fields = append(fields, challengeevent.FieldBonusPoints)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChallengeEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case challengeevent.FieldSequence:
		return m.AddedSequence()
	case challengeevent.FieldTarget:
		return m.AddedTarget()
	case challengeevent.FieldBonusPoints:
		return m.AddedBonusPoints()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChallengeEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case challengeevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case challengeevent.FieldTarget:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTarget(v)
		return nil
	case challengeevent.FieldBonusPoints:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBonusPoints(v)
		return nil
	}
	return fmt.Errorf("unknown ChallengeEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChallengeEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(challengeevent.FieldAchievementID) {
		fields = append(fields, challengeevent.FieldAchievementID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChallengeEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChallengeEventMutation) ClearField(name string) error {
	switch name {
	case challengeevent.FieldAchievementID:
		m.ClearAchievementID()
		return nil
	}
	return fmt.Errorf("unknown ChallengeEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChallengeEventMutation) ResetField(name string) error {
	switch name {
	case challengeevent.FieldSequence:
		m.ResetSequence()
		return nil
	case challengeevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case challengeevent.FieldChallengeID:
		m.ResetChallengeID()
		return nil
	case challengeevent.FieldTitle:
		m.ResetTitle()
		return nil
	case challengeevent.FieldTarget:
		m.ResetTarget()
		return nil
	case challengeevent.FieldWeekStart:
		m.ResetWeekStart()
		return nil
	case challengeevent.FieldBonusPoints:
		m.ResetBonusPoints()
		return nil
	case challengeevent.FieldAchievementID:
		m.ResetAchievementID()
		return nil
	}
	return fmt.Errorf("unknown ChallengeEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChallengeEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChallengeEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChallengeEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChallengeEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChallengeEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChallengeEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChallengeEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ChallengeEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChallengeEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ChallengeEvent edge %s", name)
}

// CosmeticEventMutation represents an operation that mutates the CosmeticEvent nodes in the graph.
type CosmeticEventMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	sequence           *int64
	addsequence        *int64
	timestamp          *time.Time
	cosmetic_id        *string
	action             *string
	category           *string
	rarity             *string
	source_achievement *string
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*CosmeticEvent, error)
	predicates         []predicate.CosmeticEvent
}

var _ ent.Mutation = (*CosmeticEventMutation)(nil)

// cosmeticeventOption allows management of the mutation configuration using functional options.
type cosmeticeventOption func(*CosmeticEventMutation)

// newCosmeticEventMutation creates new mutation for the CosmeticEvent entity.
func newCosmeticEventMutation(c config, op Op, opts ...cosmeticeventOption) *CosmeticEventMutation {
	m := &CosmeticEventMutation{
		config:        c,
		op:            op,
		typ:           TypeCosmeticEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCosmeticEventID sets the ID field of the mutation.
func withCosmeticEventID(id int) cosmeticeventOption {
	return func(m *CosmeticEventMutation) {
		var (
			err   error
			once  sync.Once
			value *CosmeticEvent
		)
		m.oldValue = func(ctx context.Context) (*CosmeticEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CosmeticEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCosmeticEvent sets the old CosmeticEvent of the mutation.
func withCosmeticEvent(node *CosmeticEvent) cosmeticeventOption {
	return func(m *CosmeticEventMutation) {
		m.oldValue = func(context.Context) (*CosmeticEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CosmeticEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CosmeticEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CosmeticEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CosmeticEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CosmeticEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *CosmeticEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *CosmeticEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the CosmeticEvent entity.
// If the CosmeticEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CosmeticEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *CosmeticEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *CosmeticEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *CosmeticEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *CosmeticEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *CosmeticEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the CosmeticEvent entity.
// If the CosmeticEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CosmeticEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *CosmeticEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetCosmeticID sets the "cosmetic_id" field.
func (m *CosmeticEventMutation) SetCosmeticID(s string) {
	m.cosmetic_id = &s
}

// CosmeticID returns the value of the "cosmetic_id" field in the mutation.
func (m *CosmeticEventMutation) CosmeticID() (r string, exists bool) {
	v := m.cosmetic_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCosmeticID returns the old "cosmetic_id" field's value of the CosmeticEvent entity.
// If the CosmeticEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CosmeticEventMutation) OldCosmeticID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCosmeticID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCosmeticID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCosmeticID: %w", err)
	}
	return oldValue.CosmeticID, nil
}

// ResetCosmeticID resets all changes to the "cosmetic_id" field.
func (m *CosmeticEventMutation) ResetCosmeticID() {
	m.cosmetic_id = nil
}

// SetAction sets the "action" field.
func (m *CosmeticEventMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *CosmeticEventMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the CosmeticEvent entity.
// If the CosmeticEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CosmeticEventMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *CosmeticEventMutation) ResetAction() {
	m.action = nil
}

// SetCategory sets the "category" field.
func (m *CosmeticEventMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *CosmeticEventMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the CosmeticEvent entity.
// If the CosmeticEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CosmeticEventMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *CosmeticEventMutation) ResetCategory() {
	m.category = nil
}

// SetRarity sets the "rarity" field.
func (m *CosmeticEventMutation) SetRarity(s string) {
	m.rarity = &s
}

// Rarity returns the value of the "rarity" field in the mutation.
func (m *CosmeticEventMutation) Rarity() (r string, exists bool) {
	v := m.rarity
	if v == nil {
		return
	}
	return *v, true
}

// OldRarity returns the old "rarity" field's value of the CosmeticEvent entity.
// If the CosmeticEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CosmeticEventMutation) OldRarity(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRarity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRarity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRarity: %w", err)
	}
	return oldValue.Rarity, nil
}

// ResetRarity resets all changes to the "rarity" field.
func (m *CosmeticEventMutation) ResetRarity() {
	m.rarity = nil
}

// SetSourceAchievement sets the "source_achievement" field.
func (m *CosmeticEventMutation) SetSourceAchievement(s string) {
	m.source_achievement = &s
}

// SourceAchievement returns the value of the "source_achievement" field in the mutation.
func (m *CosmeticEventMutation) SourceAchievement() (r string, exists bool) {
	v := m.source_achievement
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceAchievement returns the old "source_achievement" field's value of the CosmeticEvent entity.
// If the CosmeticEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CosmeticEventMutation) OldSourceAchievement(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceAchievement is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceAchievement requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceAchievement: %w", err)
	}
	return oldValue.SourceAchievement, nil
}

// ClearSourceAchievement clears the value of the "source_achievement" field.
func (m *CosmeticEventMutation) ClearSourceAchievement() {
	m.source_achievement = nil
	m.clearedFields[cosmeticevent.FieldSourceAchievement] = struct{}{}
}

// SourceAchievementCleared returns if the "source_achievement" field was cleared in this mutation.
func (m *CosmeticEventMutation) SourceAchievementCleared() bool {
	_, ok := m.clearedFields[cosmeticevent.FieldSourceAchievement]
	return ok
}

// ResetSourceAchievement resets all changes to the "source_achievement" field.
func (m *CosmeticEventMutation) ResetSourceAchievement() {
	m.source_achievement = nil
	delete(m.clearedFields, cosmeticevent.FieldSourceAchievement)
}

// Where appends a list predicates to the CosmeticEventMutation builder.
func (m *CosmeticEventMutation) Where(ps ...predicate.CosmeticEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CosmeticEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CosmeticEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CosmeticEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CosmeticEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CosmeticEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CosmeticEvent).
func (m *CosmeticEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CosmeticEventMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.sequence != nil {
		fields = append(fields, cosmeticevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, cosmeticevent.FieldTimestamp)
	}
	if m.cosmetic_id != nil {
		fields = append(fields, cosmeticevent.FieldCosmeticID)
	}
	if m.action != nil {
		fields = append(fields, cosmeticevent.FieldAction)
	}
	if m.category != nil {
		fields = append(fields, cosmeticevent.FieldCategory)
	}
	if m.rarity != nil {
		fields = append(fields, cosmeticevent.FieldRarity)
	}
	if m.source_achievement != nil {
		fields = append(fields, cosmeticevent.FieldSourceAchievement)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CosmeticEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case cosmeticevent.FieldSequence:
		return m.Sequence()
	case cosmeticevent.FieldTimestamp:
		return m.Timestamp()
	case cosmeticevent.FieldCosmeticID:
		return m.CosmeticID()
	case cosmeticevent.FieldAction:
		return m.Action()
	case cosmeticevent.FieldCategory:
		return m.Category()
	case cosmeticevent.FieldRarity:
		return m.Rarity()
	case cosmeticevent.FieldSourceAchievement:
		return m.SourceAchievement()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CosmeticEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case cosmeticevent.FieldSequence:
		return m.OldSequence(ctx)
	case cosmeticevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case cosmeticevent.FieldCosmeticID:
		return m.OldCosmeticID(ctx)
	case cosmeticevent.FieldAction:
		return m.OldAction(ctx)
	case cosmeticevent.FieldCategory:
		return m.OldCategory(ctx)
	case cosmeticevent.FieldRarity:
		return m.OldRarity(ctx)
	case cosmeticevent.FieldSourceAchievement:
		return m.OldSourceAchievement(ctx)
	}
	return nil, fmt.Errorf("unknown CosmeticEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CosmeticEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case cosmeticevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case cosmeticevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case cosmeticevent.FieldCosmeticID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCosmeticID(v)
		return nil
	case cosmeticevent.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case cosmeticevent.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case cosmeticevent.FieldRarity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRarity(v)
		return nil
	case cosmeticevent.FieldSourceAchievement:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceAchievement(v)
		return nil
	}
	return fmt.Errorf("unknown CosmeticEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CosmeticEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, cosmeticevent.FieldSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CosmeticEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case cosmeticevent.FieldSequence:
		return m.AddedSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CosmeticEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case cosmeticevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	}
	return fmt.Errorf("unknown CosmeticEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CosmeticEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(cosmeticevent.FieldSourceAchievement) {
		fields = append(fields, cosmeticevent.FieldSourceAchievement)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CosmeticEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CosmeticEventMutation) ClearField(name string) error {
	switch name {
	case cosmeticevent.FieldSourceAchievement:
		m.ClearSourceAchievement()
		return nil
	}
	return fmt.Errorf("unknown CosmeticEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CosmeticEventMutation) ResetField(name string) error {
	switch name {
	case cosmeticevent.FieldSequence:
		m.ResetSequence()
		return nil
	case cosmeticevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case cosmeticevent.FieldCosmeticID:
		m.ResetCosmeticID()
		return nil
	case cosmeticevent.FieldAction:
		m.ResetAction()
		return nil
	case cosmeticevent.FieldCategory:
		m.ResetCategory()
		return nil
	case cosmeticevent.FieldRarity:
		m.ResetRarity()
		return nil
	case cosmeticevent.FieldSourceAchievement:
		m.ResetSourceAchievement()
		return nil
	}
	return fmt.Errorf("unknown CosmeticEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CosmeticEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CosmeticEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CosmeticEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CosmeticEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CosmeticEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CosmeticEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CosmeticEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CosmeticEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CosmeticEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CosmeticEvent edge %s", name)
}

// SnapshotMutation represents an operation that mutates the Snapshot nodes in the graph.
type SnapshotMutation struct {
	config
	op            Op
	typ           string
	id            *int
	sequence      *int64
	addsequence   *int64
	timestamp     *time.Time
	data          *map[string]interface{}
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Snapshot, error)
	predicates    []predicate.Snapshot
}

var _ ent.Mutation = (*SnapshotMutation)(nil)

// snapshotOption allows management of the mutation configuration using functional options.
type snapshotOption func(*SnapshotMutation)

// newSnapshotMutation creates new mutation for the Snapshot entity.
func newSnapshotMutation(c config, op Op, opts ...snapshotOption) *SnapshotMutation {
	m := &SnapshotMutation{
		config:        c,
		op:            op,
		typ:           TypeSnapshot,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSnapshotID sets the ID field of the mutation.
func withSnapshotID(id int) snapshotOption {
	return func(m *SnapshotMutation) {
		var (
			err   error
			once  sync.Once
			value *Snapshot
		)
		m.oldValue = func(ctx context.Context) (*Snapshot, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Snapshot.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSnapshot sets the old Snapshot of the mutation.
func withSnapshot(node *Snapshot) snapshotOption {
	return func(m *SnapshotMutation) {
		m.oldValue = func(context.Context) (*Snapshot, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SnapshotMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SnapshotMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SnapshotMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SnapshotMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Snapshot.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *SnapshotMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *SnapshotMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the Snapshot entity.
// If the Snapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SnapshotMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *SnapshotMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *SnapshotMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *SnapshotMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *SnapshotMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *SnapshotMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the Snapshot entity.
// If the Snapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SnapshotMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *SnapshotMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetData sets the "data" field.
func (m *SnapshotMutation) SetData(value map[string]interface{}) {
	m.data = &value
}

// Data returns the value of the "data" field in the mutation.
func (m *SnapshotMutation) Data() (r map[string]interface{}, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the Snapshot entity.
// If the Snapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SnapshotMutation) OldData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// ResetData resets all changes to the "data" field.
func (m *SnapshotMutation) ResetData() {
	m.data = nil
}

// Where appends a list predicates to the SnapshotMutation builder.
func (m *SnapshotMutation) Where(ps ...predicate.Snapshot) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SnapshotMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SnapshotMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Snapshot, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SnapshotMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SnapshotMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Snapshot).
func (m *SnapshotMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SnapshotMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.sequence != nil {
		fields = append(fields, snapshot.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, snapshot.FieldTimestamp)
	}
	if m.data != nil {
		fields = append(fields, snapshot.FieldData)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SnapshotMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case snapshot.FieldSequence:
		return m.Sequence()
	case snapshot.FieldTimestamp:
		return m.Timestamp()
	case snapshot.FieldData:
		return m.Data()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SnapshotMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case snapshot.FieldSequence:
		return m.OldSequence(ctx)
	case snapshot.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case snapshot.FieldData:
		return m.OldData(ctx)
	}
	return nil, fmt.Errorf("unknown Snapshot field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SnapshotMutation) SetField(name string, value ent.Value) error {
	switch name {
	case snapshot.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case snapshot.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case snapshot.FieldData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	}
	return fmt.Errorf("unknown Snapshot field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SnapshotMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, snapshot.FieldSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SnapshotMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case snapshot.FieldSequence:
		return m.AddedSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SnapshotMutation) AddField(name string, value ent.Value) error {
	switch name {
	case snapshot.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	}
	return fmt.Errorf("unknown Snapshot numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SnapshotMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SnapshotMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SnapshotMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Snapshot nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SnapshotMutation) ResetField(name string) error {
	switch name {
	case snapshot.FieldSequence:
		m.ResetSequence()
		return nil
	case snapshot.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case snapshot.FieldData:
		m.ResetData()
		return nil
	}
	return fmt.Errorf("unknown Snapshot field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SnapshotMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SnapshotMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SnapshotMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SnapshotMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SnapshotMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SnapshotMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SnapshotMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Snapshot unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SnapshotMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Snapshot edge %s", name)
}

// StreakEventMutation represents an operation that mutates the StreakEvent nodes in the graph.
type StreakEventMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	sequence           *int64
	addsequence        *int64
	timestamp          *time.Time
	date               *string
	criteria_met       *bool
	previous_streak    *int
	addprevious_streak *int
	new_streak         *int
	addnew_streak      *int
	was_reset          *bool
	milestone          *int
	addmilestone       *int
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*StreakEvent, error)
	predicates         []predicate.StreakEvent
}

var _ ent.Mutation = (*StreakEventMutation)(nil)

// streakeventOption allows management of the mutation configuration using functional options.
type streakeventOption func(*StreakEventMutation)

// newStreakEventMutation creates new mutation for the StreakEvent entity.
func newStreakEventMutation(c config, op Op, opts ...streakeventOption) *StreakEventMutation {
	m := &StreakEventMutation{
		config:        c,
		op:            op,
		typ:           TypeStreakEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStreakEventID sets the ID field of the mutation.
func withStreakEventID(id int) streakeventOption {
	return func(m *StreakEventMutation) {
		var (
			err   error
			once  sync.Once
			value *StreakEvent
		)
		m.oldValue = func(ctx context.Context) (*StreakEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StreakEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStreakEvent sets the old StreakEvent of the mutation.
func withStreakEvent(node *StreakEvent) streakeventOption {
	return func(m *StreakEventMutation) {
		m.oldValue = func(context.Context) (*StreakEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StreakEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StreakEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StreakEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StreakEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StreakEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *StreakEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *StreakEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the StreakEvent entity.
// If the StreakEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StreakEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *StreakEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *StreakEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *StreakEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *StreakEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *StreakEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the StreakEvent entity.
// If the StreakEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StreakEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *StreakEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetDate sets the "date" field.
func (m *StreakEventMutation) SetDate(s string) {
	m.date = &s
}

// Date returns the value of the "date" field in the mutation.
func (m *StreakEventMutation) Date() (r string, exists bool) {
	v := m.date
	if v == nil {
		return
	}
	return *v, true
}

// OldDate returns the old "date" field's value of the StreakEvent entity.
// If the StreakEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StreakEventMutation) OldDate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDate: %w", err)
	}
	return oldValue.Date, nil
}

// ResetDate resets all changes to the "date" field.
func (m *StreakEventMutation) ResetDate() {
	m.date = nil
}

// SetCriteriaMet sets the "criteria_met" field.
func (m *StreakEventMutation) SetCriteriaMet(b bool) {
	m.criteria_met = &b
}

// CriteriaMet returns the value of the "criteria_met" field in the mutation.
func (m *StreakEventMutation) CriteriaMet() (r bool, exists bool) {
	v := m.criteria_met
	if v == nil {
		return
	}
	return *v, true
}

// OldCriteriaMet returns the old "criteria_met" field's value of the StreakEvent entity.
// If the StreakEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StreakEventMutation) OldCriteriaMet(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCriteriaMet is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCriteriaMet requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCriteriaMet: %w", err)
	}
	return oldValue.CriteriaMet, nil
}

// ResetCriteriaMet resets all changes to the "criteria_met" field.
func (m *StreakEventMutation) ResetCriteriaMet() {
	m.criteria_met = nil
}

// SetPreviousStreak sets the "previous_streak" field.
func (m *StreakEventMutation) SetPreviousStreak(i int) {
	m.previous_streak = &i
	m.addprevious_streak = nil
}

// PreviousStreak returns the value of the "previous_streak" field in the mutation.
func (m *StreakEventMutation) PreviousStreak() (r int, exists bool) {
	v := m.previous_streak
	if v == nil {
		return
	}
	return *v, true
}

// OldPreviousStreak returns the old "previous_streak" field's value of the StreakEvent entity.
// If the StreakEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StreakEventMutation) OldPreviousStreak(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPreviousStreak is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPreviousStreak requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPreviousStreak: %w", err)
	}
	return oldValue.PreviousStreak, nil
}

// AddPreviousStreak adds i to the "previous_streak" field.
func (m *StreakEventMutation) AddPreviousStreak(i int) {
	if m.addprevious_streak != nil {
		*m.addprevious_streak += i
	} else {
		m.addprevious_streak = &i
	}
}

// AddedPreviousStreak returns the value that was added to the "previous_streak" field in this mutation.
func (m *StreakEventMutation) AddedPreviousStreak() (r int, exists bool) {
	v := m.addprevious_streak
	if v == nil {
		return
	}
	return *v, true
}

// ResetPreviousStreak resets all changes to the "previous_streak" field.
func (m *StreakEventMutation) ResetPreviousStreak() {
	m.previous_streak = nil
	m.addprevious_streak = nil
}

// SetNewStreak sets the "new_streak" field.
func (m *StreakEventMutation) SetNewStreak(i int) {
	m.new_streak = &i
	m.addnew_streak = nil
}

// NewStreak returns the value of the "new_streak" field in the mutation.
func (m *StreakEventMutation) NewStreak() (r int, exists bool) {
	v := m.new_streak
	if v == nil {
		return
	}
	return *v, true
}

// OldNewStreak returns the old "new_streak" field's value of the StreakEvent entity.
// If the StreakEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StreakEventMutation) OldNewStreak(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNewStreak is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNewStreak requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNewStreak: %w", err)
	}
	return oldValue.NewStreak, nil
}

// AddNewStreak adds i to the "new_streak" field.
func (m *StreakEventMutation) AddNewStreak(i int) {
	if m.addnew_streak != nil {
		*m.addnew_streak += i
	} else {
		m.addnew_streak = &i
	}
}

// AddedNewStreak returns the value that was added to the "new_streak" field in this mutation.
func (m *StreakEventMutation) AddedNewStreak() (r int, exists bool) {
	v := m.addnew_streak
	if v == nil {
		return
	}
	return *v, true
}

// ResetNewStreak resets all changes to the "new_streak" field.
func (m *StreakEventMutation) ResetNewStreak() {
	m.new_streak = nil
	m.addnew_streak = nil
}

// SetWasReset sets the "was_reset" field.
func (m *StreakEventMutation) SetWasReset(b bool) {
	m.was_reset = &b
}

// WasReset returns the value of the "was_reset" field in the mutation.
func (m *StreakEventMutation) WasReset() (r bool, exists bool) {
	v := m.was_reset
	if v == nil {
		return
	}
	return *v, true
}

// OldWasReset returns the old "was_reset" field's value of the StreakEvent entity.
// If the StreakEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StreakEventMutation) OldWasReset(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWasReset is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWasReset requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWasReset: %w", err)
	}
	return oldValue.WasReset, nil
}

// ResetWasReset resets all changes to the "was_reset" field.
func (m *StreakEventMutation) ResetWasReset() {
	m.was_reset = nil
}

// SetMilestone sets the "milestone" field.
func (m *StreakEventMutation) SetMilestone(i int) {
	m.milestone = &i
	m.addmilestone = nil
}

// Milestone returns the value of the "milestone" field in the mutation.
func (m *StreakEventMutation) Milestone() (r int, exists bool) {
	v := m.milestone
	if v == nil {
		return
	}
	return *v, true
}

// OldMilestone returns the old "milestone" field's value of the StreakEvent entity.
// If the StreakEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StreakEventMutation) OldMilestone(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMilestone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMilestone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMilestone: %w", err)
	}
	return oldValue.Milestone, nil
}

// AddMilestone adds i to the "milestone" field.
func (m *StreakEventMutation) AddMilestone(i int) {
	if m.addmilestone != nil {
		*m.addmilestone += i
	} else {
		m.addmilestone = &i
	}
}

// AddedMilestone returns the value that was added to the "milestone" field in this mutation.
func (m *StreakEventMutation) AddedMilestone() (r int, exists bool) {
	v := m.addmilestone
	if v == nil {
		return
	}
	return *v, true
}

// ClearMilestone clears the value of the "milestone" field.
func (m *StreakEventMutation) ClearMilestone() {
	m.milestone = nil
	m.addmilestone = nil
	m.clearedFields[streakevent.FieldMilestone] = struct{}{}
}

// MilestoneCleared returns if the "milestone" field was cleared in this mutation.
func (m *StreakEventMutation) MilestoneCleared() bool {
	_, ok := m.clearedFields[streakevent.FieldMilestone]
	return ok
}

// ResetMilestone resets all changes to the "milestone" field.
func (m *StreakEventMutation) ResetMilestone() {
	m.milestone = nil
	m.addmilestone = nil
	delete(m.clearedFields, streakevent.FieldMilestone)
}

// Where appends a list predicates to the StreakEventMutation builder.
func (m *StreakEventMutation) Where(ps ...predicate.StreakEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StreakEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StreakEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StreakEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StreakEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StreakEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StreakEvent).
func (m *StreakEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StreakEventMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.sequence != nil {
		fields = append(fields, streakevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, streakevent.FieldTimestamp)
	}
	if m.date != nil {
		fields = append(fields, streakevent.FieldDate)
	}
	if m.criteria_met != nil {
		fields = append(fields, streakevent.FieldCriteriaMet)
	}
	if m.previous_streak != nil {
		fields = append(fields, streakevent.FieldPreviousStreak)
	}
	if m.new_streak != nil {
		fields = append(fields, streakevent.FieldNewStreak)
	}
	if m.was_reset != nil {
		fields = append(fields, streakevent.FieldWasReset)
	}
	if m.milestone != nil {
		fields = append(fields, streakevent.FieldMilestone)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StreakEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case streakevent.FieldSequence:
		return m.Sequence()
	case streakevent.FieldTimestamp:
		return m.Timestamp()
	case streakevent.FieldDate:
		return m.Date()
	case streakevent.FieldCriteriaMet:
		return m.CriteriaMet()
	case streakevent.FieldPreviousStreak:
		return m.PreviousStreak()
	case streakevent.FieldNewStreak:
		return m.NewStreak()
	case streakevent.FieldWasReset:
		return m.WasReset()
	case streakevent.FieldMilestone:
		return m.Milestone()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StreakEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case streakevent.FieldSequence:
		return m.OldSequence(ctx)
	case streakevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case streakevent.FieldDate:
		return m.OldDate(ctx)
	case streakevent.FieldCriteriaMet:
		return m.OldCriteriaMet(ctx)
	case streakevent.FieldPreviousStreak:
		return m.OldPreviousStreak(ctx)
	case streakevent.FieldNewStreak:
		return m.OldNewStreak(ctx)
	case streakevent.FieldWasReset:
		return m.OldWasReset(ctx)
	case streakevent.FieldMilestone:
		return m.OldMilestone(ctx)
	}
	return nil, fmt.Errorf("unknown StreakEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StreakEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case streakevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case streakevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case streakevent.FieldDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDate(v)
		return nil
	case streakevent.FieldCriteriaMet:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCriteriaMet(v)
		return nil
	case streakevent.FieldPreviousStreak:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPreviousStreak(v)
		return nil
	case streakevent.FieldNewStreak:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNewStreak(v)
		return nil
	case streakevent.FieldWasReset:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWasReset(v)
		return nil
	case streakevent.FieldMilestone:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMilestone(v)
		return nil
	}
	return fmt.Errorf("unknown StreakEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StreakEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, streakevent.FieldSequence)
	}
	if m.addprevious_streak != nil {
		fields = append(fields, streakevent.FieldPreviousStreak)
	}
	if m.addnew_streak != nil {
		fields = append(fields, streakevent.FieldNewStreak)
	}
	if m.addmilestone != nil {
		fields = append(fields, streakevent.FieldMilestone)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StreakEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case streakevent.FieldSequence:
		return m.AddedSequence()
	case streakevent.FieldPreviousStreak:
		return m.AddedPreviousStreak()
	case streakevent.FieldNewStreak:
		return m.AddedNewStreak()
	case streakevent.FieldMilestone:
		return m.AddedMilestone()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StreakEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case streakevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case streakevent.FieldPreviousStreak:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPreviousStreak(v)
		return nil
	case streakevent.FieldNewStreak:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNewStreak(v)
		return nil
	case streakevent.FieldMilestone:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMilestone(v)
		return nil
	}
	return fmt.Errorf("unknown StreakEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StreakEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(streakevent.FieldMilestone) {
		fields = append(fields, streakevent.FieldMilestone)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StreakEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StreakEventMutation) ClearField(name string) error {
	switch name {
	case streakevent.FieldMilestone:
		m.ClearMilestone()
		return nil
	}
	return fmt.Errorf("unknown StreakEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StreakEventMutation) ResetField(name string) error {
	switch name {
	case streakevent.FieldSequence:
		m.ResetSequence()
		return nil
	case streakevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case streakevent.FieldDate:
		m.ResetDate()
		return nil
	case streakevent.FieldCriteriaMet:
		m.ResetCriteriaMet()
		return nil
	case streakevent.FieldPreviousStreak:
		m.ResetPreviousStreak()
		return nil
	case streakevent.FieldNewStreak:
		m.ResetNewStreak()
		return nil
	case streakevent.FieldWasReset:
		m.ResetWasReset()
		return nil
	case streakevent.FieldMilestone:
		m.ResetMilestone()
		return nil
	}
	return fmt.Errorf("unknown StreakEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StreakEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StreakEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StreakEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StreakEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StreakEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StreakEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StreakEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown StreakEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StreakEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown StreakEvent edge %s", name)
}
