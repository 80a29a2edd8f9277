// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package store

// Table is an immutable, insertion-ordered collection of records with
// an id index. Operations that change a table return a new one; the
// receiver is never modified after construction, so a table pointer is
// a stable identity for the contents it holds.
type Table[ID comparable, R any] struct {
	records []R
	index   map[ID]int
	idOf    func(R) ID
}

// ItemTable holds the item collection.
type ItemTable = Table[ItemID, Item]

// ChoiceTable holds the choice collection.
type ChoiceTable = Table[ChoiceID, Choice]

// GroupTable holds the group collection.
type GroupTable = Table[GroupID, Group]

func newTable[ID comparable, R any](records []R, idOf func(R) ID) *Table[ID, R] {
	index := make(map[ID]int, len(records))
	for position, record := range records {
		index[idOf(record)] = position
	}
	return &Table[ID, R]{records: records, index: index, idOf: idOf}
}

func itemID(item Item) ItemID         { return item.ID }
func choiceID(choice Choice) ChoiceID { return choice.ID }
func groupID(group Group) GroupID     { return group.ID }
func emptyItems() *ItemTable          { return newTable[ItemID, Item](nil, itemID) }
func emptyChoices() *ChoiceTable      { return newTable[ChoiceID, Choice](nil, choiceID) }
func emptyGroups() *GroupTable        { return newTable[GroupID, Group](nil, groupID) }

// Len returns the number of records, including inactive ones.
func (table *Table[ID, R]) Len() int {
	return len(table.records)
}

// All returns a copy of every record in insertion order.
func (table *Table[ID, R]) All() []R {
	result := make([]R, len(table.records))
	copy(result, table.records)
	return result
}

// Get returns the record with the given id.
func (table *Table[ID, R]) Get(id ID) (R, bool) {
	position, exists := table.index[id]
	if !exists {
		var zero R
		return zero, false
	}
	return table.records[position], true
}

// Has reports whether a record with the given id exists.
func (table *Table[ID, R]) Has(id ID) bool {
	_, exists := table.index[id]
	return exists
}

// Filter returns the records for which keep returns true, in insertion
// order. The result is never nil.
func (table *Table[ID, R]) Filter(keep func(R) bool) []R {
	result := make([]R, 0, len(table.records))
	for _, record := range table.records {
		if keep(record) {
			result = append(result, record)
		}
	}
	return result
}

// appended returns a new table with record added at the end.
func (table *Table[ID, R]) appended(record R) *Table[ID, R] {
	records := make([]R, len(table.records), len(table.records)+1)
	copy(records, table.records)
	records = append(records, record)
	return newTable(records, table.idOf)
}

// mapped returns a new table with every record passed through update.
// The index is shared with the receiver since ids do not change.
func (table *Table[ID, R]) mapped(update func(R) R) *Table[ID, R] {
	records := make([]R, len(table.records))
	for position, record := range table.records {
		records[position] = update(record)
	}
	return &Table[ID, R]{records: records, index: table.index, idOf: table.idOf}
}

// updated returns a new table with the record for id replaced by the
// result of update. Returns the receiver unchanged when id is absent.
func (table *Table[ID, R]) updated(id ID, update func(R) R) *Table[ID, R] {
	position, exists := table.index[id]
	if !exists {
		return table
	}
	records := make([]R, len(table.records))
	copy(records, table.records)
	records[position] = update(records[position])
	return &Table[ID, R]{records: records, index: table.index, idOf: table.idOf}
}
