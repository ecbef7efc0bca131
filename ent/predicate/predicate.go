// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AttemptEvent is the predicate function for attemptevent builders.
type AttemptEvent func(*sql.Selector)

// DocumentMastery is the predicate function for documentmastery builders.
type DocumentMastery func(*sql.Selector)

// EventSequence is the predicate function for eventsequence builders.
type EventSequence func(*sql.Selector)

// ItemMastery is the predicate function for itemmastery builders.
type ItemMastery func(*sql.Selector)

// QuizItem is the predicate function for quizitem builders.
type QuizItem func(*sql.Selector)

// RegenEvent is the predicate function for regenevent builders.
type RegenEvent func(*sql.Selector)

// ReviewSchedule is the predicate function for reviewschedule builders.
type ReviewSchedule func(*sql.Selector)

// SessionCounter is the predicate function for sessioncounter builders.
type SessionCounter func(*sql.Selector)

// SessionEvent is the predicate function for sessionevent builders.
type SessionEvent func(*sql.Selector)
