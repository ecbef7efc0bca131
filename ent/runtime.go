// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/memora-labs/memora/ent/attemptevent"
	"github.com/memora-labs/memora/ent/documentmastery"
	"github.com/memora-labs/memora/ent/eventsequence"
	"github.com/memora-labs/memora/ent/itemmastery"
	"github.com/memora-labs/memora/ent/quizitem"
	"github.com/memora-labs/memora/ent/regenevent"
	"github.com/memora-labs/memora/ent/reviewschedule"
	"github.com/memora-labs/memora/ent/schema"
	"github.com/memora-labs/memora/ent/sessioncounter"
	"github.com/memora-labs/memora/ent/sessionevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescItemID is the schema descriptor for item_id field.
	attempteventDescItemID := attempteventFields[0].Descriptor()
	// attemptevent.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	attemptevent.ItemIDValidator = attempteventDescItemID.Validators[0].(func(string) error)
	// attempteventDescLearnerID is the schema descriptor for learner_id field.
	attempteventDescLearnerID := attempteventFields[1].Descriptor()
	// attemptevent.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	attemptevent.LearnerIDValidator = attempteventDescLearnerID.Validators[0].(func(string) error)
	// attempteventDescDocumentID is the schema descriptor for document_id field.
	attempteventDescDocumentID := attempteventFields[2].Descriptor()
	// attemptevent.DocumentIDValidator is a validator for the "document_id" field. It is called by the builders before save.
	attemptevent.DocumentIDValidator = attempteventDescDocumentID.Validators[0].(func(string) error)
	// attempteventDescSessionID is the schema descriptor for session_id field.
	attempteventDescSessionID := attempteventFields[3].Descriptor()
	// attemptevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	attemptevent.SessionIDValidator = attempteventDescSessionID.Validators[0].(func(string) error)
	// attempteventDescTimeTakenSecs is the schema descriptor for time_taken_secs field.
	attempteventDescTimeTakenSecs := attempteventFields[5].Descriptor()
	// attemptevent.TimeTakenSecsValidator is a validator for the "time_taken_secs" field. It is called by the builders before save.
	attemptevent.TimeTakenSecsValidator = attempteventDescTimeTakenSecs.Validators[0].(func(float64) error)
	documentmasteryFields := schema.DocumentMastery{}.Fields()
	_ = documentmasteryFields
	// documentmasteryDescDocumentID is the schema descriptor for document_id field.
	documentmasteryDescDocumentID := documentmasteryFields[0].Descriptor()
	// documentmastery.DocumentIDValidator is a validator for the "document_id" field. It is called by the builders before save.
	documentmastery.DocumentIDValidator = documentmasteryDescDocumentID.Validators[0].(func(string) error)
	// documentmasteryDescLearnerID is the schema descriptor for learner_id field.
	documentmasteryDescLearnerID := documentmasteryFields[1].Descriptor()
	// documentmastery.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	documentmastery.LearnerIDValidator = documentmasteryDescLearnerID.Validators[0].(func(string) error)
	// documentmasteryDescScore is the schema descriptor for score field.
	documentmasteryDescScore := documentmasteryFields[2].Descriptor()
	// documentmastery.ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	documentmastery.ScoreValidator = func() func(float64) error {
		validators := documentmasteryDescScore.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(score float64) error {
			for _, fn := range fns {
				if err := fn(score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// documentmasteryDescUpdatedAt is the schema descriptor for updated_at field.
	documentmasteryDescUpdatedAt := documentmasteryFields[3].Descriptor()
	// documentmastery.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	documentmastery.DefaultUpdatedAt = documentmasteryDescUpdatedAt.Default.(func() time.Time)
	// documentmastery.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	documentmastery.UpdateDefaultUpdatedAt = documentmasteryDescUpdatedAt.UpdateDefault.(func() time.Time)
	eventsequenceFields := schema.EventSequence{}.Fields()
	_ = eventsequenceFields
	// eventsequenceDescNextVal is the schema descriptor for next_val field.
	eventsequenceDescNextVal := eventsequenceFields[1].Descriptor()
	// eventsequence.DefaultNextVal holds the default value on creation for the next_val field.
	eventsequence.DefaultNextVal = eventsequenceDescNextVal.Default.(int64)
	// eventsequence.NextValValidator is a validator for the "next_val" field. It is called by the builders before save.
	eventsequence.NextValValidator = eventsequenceDescNextVal.Validators[0].(func(int64) error)
	itemmasteryFields := schema.ItemMastery{}.Fields()
	_ = itemmasteryFields
	// itemmasteryDescItemID is the schema descriptor for item_id field.
	itemmasteryDescItemID := itemmasteryFields[0].Descriptor()
	// itemmastery.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	itemmastery.ItemIDValidator = itemmasteryDescItemID.Validators[0].(func(string) error)
	// itemmasteryDescLearnerID is the schema descriptor for learner_id field.
	itemmasteryDescLearnerID := itemmasteryFields[1].Descriptor()
	// itemmastery.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	itemmastery.LearnerIDValidator = itemmasteryDescLearnerID.Validators[0].(func(string) error)
	// itemmasteryDescDocumentID is the schema descriptor for document_id field.
	itemmasteryDescDocumentID := itemmasteryFields[2].Descriptor()
	// itemmastery.DocumentIDValidator is a validator for the "document_id" field. It is called by the builders before save.
	itemmastery.DocumentIDValidator = itemmasteryDescDocumentID.Validators[0].(func(string) error)
	// itemmasteryDescScore is the schema descriptor for score field.
	itemmasteryDescScore := itemmasteryFields[3].Descriptor()
	// itemmastery.ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	itemmastery.ScoreValidator = func() func(float64) error {
		validators := itemmasteryDescScore.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(score float64) error {
			for _, fn := range fns {
				if err := fn(score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// itemmasteryDescUpdatedAt is the schema descriptor for updated_at field.
	itemmasteryDescUpdatedAt := itemmasteryFields[4].Descriptor()
	// itemmastery.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	itemmastery.DefaultUpdatedAt = itemmasteryDescUpdatedAt.Default.(func() time.Time)
	// itemmastery.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	itemmastery.UpdateDefaultUpdatedAt = itemmasteryDescUpdatedAt.UpdateDefault.(func() time.Time)
	quizitemFields := schema.QuizItem{}.Fields()
	_ = quizitemFields
	// quizitemDescItemID is the schema descriptor for item_id field.
	quizitemDescItemID := quizitemFields[0].Descriptor()
	// quizitem.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	quizitem.ItemIDValidator = quizitemDescItemID.Validators[0].(func(string) error)
	// quizitemDescDocumentID is the schema descriptor for document_id field.
	quizitemDescDocumentID := quizitemFields[1].Descriptor()
	// quizitem.DocumentIDValidator is a validator for the "document_id" field. It is called by the builders before save.
	quizitem.DocumentIDValidator = quizitemDescDocumentID.Validators[0].(func(string) error)
	// quizitemDescLearnerID is the schema descriptor for learner_id field.
	quizitemDescLearnerID := quizitemFields[2].Descriptor()
	// quizitem.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	quizitem.LearnerIDValidator = quizitemDescLearnerID.Validators[0].(func(string) error)
	// quizitemDescRetired is the schema descriptor for retired field.
	quizitemDescRetired := quizitemFields[4].Descriptor()
	// quizitem.DefaultRetired holds the default value on creation for the retired field.
	quizitem.DefaultRetired = quizitemDescRetired.Default.(bool)
	regeneventMixin := schema.RegenEvent{}.Mixin()
	regeneventMixinFields0 := regeneventMixin[0].Fields()
	_ = regeneventMixinFields0
	regeneventFields := schema.RegenEvent{}.Fields()
	_ = regeneventFields
	// regeneventDescTimestamp is the schema descriptor for timestamp field.
	regeneventDescTimestamp := regeneventMixinFields0[1].Descriptor()
	// regenevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	regenevent.DefaultTimestamp = regeneventDescTimestamp.Default.(func() time.Time)
	// regeneventDescLearnerID is the schema descriptor for learner_id field.
	regeneventDescLearnerID := regeneventFields[0].Descriptor()
	// regenevent.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	regenevent.LearnerIDValidator = regeneventDescLearnerID.Validators[0].(func(string) error)
	// regeneventDescDocumentID is the schema descriptor for document_id field.
	regeneventDescDocumentID := regeneventFields[1].Descriptor()
	// regenevent.DocumentIDValidator is a validator for the "document_id" field. It is called by the builders before save.
	regenevent.DocumentIDValidator = regeneventDescDocumentID.Validators[0].(func(string) error)
	reviewscheduleFields := schema.ReviewSchedule{}.Fields()
	_ = reviewscheduleFields
	// reviewscheduleDescDocumentID is the schema descriptor for document_id field.
	reviewscheduleDescDocumentID := reviewscheduleFields[0].Descriptor()
	// reviewschedule.DocumentIDValidator is a validator for the "document_id" field. It is called by the builders before save.
	reviewschedule.DocumentIDValidator = reviewscheduleDescDocumentID.Validators[0].(func(string) error)
	// reviewscheduleDescLearnerID is the schema descriptor for learner_id field.
	reviewscheduleDescLearnerID := reviewscheduleFields[1].Descriptor()
	// reviewschedule.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	reviewschedule.LearnerIDValidator = reviewscheduleDescLearnerID.Validators[0].(func(string) error)
	// reviewscheduleDescIntervalDays is the schema descriptor for interval_days field.
	reviewscheduleDescIntervalDays := reviewscheduleFields[2].Descriptor()
	// reviewschedule.DefaultIntervalDays holds the default value on creation for the interval_days field.
	reviewschedule.DefaultIntervalDays = reviewscheduleDescIntervalDays.Default.(int)
	// reviewschedule.IntervalDaysValidator is a validator for the "interval_days" field. It is called by the builders before save.
	reviewschedule.IntervalDaysValidator = reviewscheduleDescIntervalDays.Validators[0].(func(int) error)
	// reviewscheduleDescVersion is the schema descriptor for version field.
	reviewscheduleDescVersion := reviewscheduleFields[4].Descriptor()
	// reviewschedule.DefaultVersion holds the default value on creation for the version field.
	reviewschedule.DefaultVersion = reviewscheduleDescVersion.Default.(int64)
	// reviewscheduleDescUpdatedAt is the schema descriptor for updated_at field.
	reviewscheduleDescUpdatedAt := reviewscheduleFields[5].Descriptor()
	// reviewschedule.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	reviewschedule.DefaultUpdatedAt = reviewscheduleDescUpdatedAt.Default.(func() time.Time)
	// reviewschedule.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	reviewschedule.UpdateDefaultUpdatedAt = reviewscheduleDescUpdatedAt.UpdateDefault.(func() time.Time)
	sessioncounterFields := schema.SessionCounter{}.Fields()
	_ = sessioncounterFields
	// sessioncounterDescDocumentID is the schema descriptor for document_id field.
	sessioncounterDescDocumentID := sessioncounterFields[0].Descriptor()
	// sessioncounter.DocumentIDValidator is a validator for the "document_id" field. It is called by the builders before save.
	sessioncounter.DocumentIDValidator = sessioncounterDescDocumentID.Validators[0].(func(string) error)
	// sessioncounterDescLearnerID is the schema descriptor for learner_id field.
	sessioncounterDescLearnerID := sessioncounterFields[1].Descriptor()
	// sessioncounter.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	sessioncounter.LearnerIDValidator = sessioncounterDescLearnerID.Validators[0].(func(string) error)
	// sessioncounterDescCompletedSessions is the schema descriptor for completed_sessions field.
	sessioncounterDescCompletedSessions := sessioncounterFields[2].Descriptor()
	// sessioncounter.DefaultCompletedSessions holds the default value on creation for the completed_sessions field.
	sessioncounter.DefaultCompletedSessions = sessioncounterDescCompletedSessions.Default.(int)
	// sessioncounter.CompletedSessionsValidator is a validator for the "completed_sessions" field. It is called by the builders before save.
	sessioncounter.CompletedSessionsValidator = sessioncounterDescCompletedSessions.Validators[0].(func(int) error)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescLearnerID is the schema descriptor for learner_id field.
	sessioneventDescLearnerID := sessioneventFields[1].Descriptor()
	// sessionevent.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	sessionevent.LearnerIDValidator = sessioneventDescLearnerID.Validators[0].(func(string) error)
	// sessioneventDescDocumentID is the schema descriptor for document_id field.
	sessioneventDescDocumentID := sessioneventFields[2].Descriptor()
	// sessionevent.DocumentIDValidator is a validator for the "document_id" field. It is called by the builders before save.
	sessionevent.DocumentIDValidator = sessioneventDescDocumentID.Validators[0].(func(string) error)
	// sessioneventDescQuestionsAnswered is the schema descriptor for questions_answered field.
	sessioneventDescQuestionsAnswered := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultQuestionsAnswered holds the default value on creation for the questions_answered field.
	sessionevent.DefaultQuestionsAnswered = sessioneventDescQuestionsAnswered.Default.(int)
	// sessioneventDescCorrectCount is the schema descriptor for correct_count field.
	sessioneventDescCorrectCount := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultCorrectCount holds the default value on creation for the correct_count field.
	sessionevent.DefaultCorrectCount = sessioneventDescCorrectCount.Default.(int)
}
