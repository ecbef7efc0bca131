// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttemptEventsColumns holds the columns for the "attempt_events" table.
	AttemptEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "item_id", Type: field.TypeString},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "document_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
		{Name: "time_taken_secs", Type: field.TypeFloat64},
	}
	// AttemptEventsTable holds the schema information for the "attempt_events" table.
	AttemptEventsTable = &schema.Table{
		Name:       "attempt_events",
		Columns:    AttemptEventsColumns,
		PrimaryKey: []*schema.Column{AttemptEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attemptevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[1]},
			},
			{
				Name:    "attemptevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[2]},
			},
			{
				Name:    "attemptevent_item_id_learner_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[3], AttemptEventsColumns[4]},
			},
			{
				Name:    "attemptevent_document_id_learner_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[5], AttemptEventsColumns[4]},
			},
			{
				Name:    "attemptevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[6]},
			},
		},
	}
	// DocumentMasteriesColumns holds the columns for the "document_masteries" table.
	DocumentMasteriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "document_id", Type: field.TypeString},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "score", Type: field.TypeFloat64},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// DocumentMasteriesTable holds the schema information for the "document_masteries" table.
	DocumentMasteriesTable = &schema.Table{
		Name:       "document_masteries",
		Columns:    DocumentMasteriesColumns,
		PrimaryKey: []*schema.Column{DocumentMasteriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "documentmastery_document_id_learner_id",
				Unique:  true,
				Columns: []*schema.Column{DocumentMasteriesColumns[1], DocumentMasteriesColumns[2]},
			},
		},
	}
	// EventSequencesColumns holds the columns for the "event_sequences" table.
	EventSequencesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "next_val", Type: field.TypeInt64, Default: 1},
	}
	// EventSequencesTable holds the schema information for the "event_sequences" table.
	EventSequencesTable = &schema.Table{
		Name:       "event_sequences",
		Columns:    EventSequencesColumns,
		PrimaryKey: []*schema.Column{EventSequencesColumns[0]},
	}
	// ItemMasteriesColumns holds the columns for the "item_masteries" table.
	ItemMasteriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "item_id", Type: field.TypeString},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "document_id", Type: field.TypeString},
		{Name: "score", Type: field.TypeFloat64},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ItemMasteriesTable holds the schema information for the "item_masteries" table.
	ItemMasteriesTable = &schema.Table{
		Name:       "item_masteries",
		Columns:    ItemMasteriesColumns,
		PrimaryKey: []*schema.Column{ItemMasteriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "itemmastery_item_id_learner_id",
				Unique:  true,
				Columns: []*schema.Column{ItemMasteriesColumns[1], ItemMasteriesColumns[2]},
			},
			{
				Name:    "itemmastery_document_id_learner_id",
				Unique:  false,
				Columns: []*schema.Column{ItemMasteriesColumns[3], ItemMasteriesColumns[2]},
			},
		},
	}
	// QuizItemsColumns holds the columns for the "quiz_items" table.
	QuizItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "item_id", Type: field.TypeString},
		{Name: "document_id", Type: field.TypeString},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "keywords", Type: field.TypeJSON, Nullable: true},
		{Name: "retired", Type: field.TypeBool, Default: false},
	}
	// QuizItemsTable holds the schema information for the "quiz_items" table.
	QuizItemsTable = &schema.Table{
		Name:       "quiz_items",
		Columns:    QuizItemsColumns,
		PrimaryKey: []*schema.Column{QuizItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quizitem_item_id_learner_id",
				Unique:  true,
				Columns: []*schema.Column{QuizItemsColumns[1], QuizItemsColumns[3]},
			},
			{
				Name:    "quizitem_document_id_learner_id",
				Unique:  false,
				Columns: []*schema.Column{QuizItemsColumns[2], QuizItemsColumns[3]},
			},
		},
	}
	// RegenEventsColumns holds the columns for the "regen_events" table.
	RegenEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "document_id", Type: field.TypeString},
		{Name: "weak_topics", Type: field.TypeJSON, Nullable: true},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
	}
	// RegenEventsTable holds the schema information for the "regen_events" table.
	RegenEventsTable = &schema.Table{
		Name:       "regen_events",
		Columns:    RegenEventsColumns,
		PrimaryKey: []*schema.Column{RegenEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "regenevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{RegenEventsColumns[1]},
			},
			{
				Name:    "regenevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{RegenEventsColumns[2]},
			},
			{
				Name:    "regenevent_document_id_learner_id",
				Unique:  false,
				Columns: []*schema.Column{RegenEventsColumns[4], RegenEventsColumns[3]},
			},
			{
				Name:    "regenevent_success",
				Unique:  false,
				Columns: []*schema.Column{RegenEventsColumns[6]},
			},
		},
	}
	// ReviewSchedulesColumns holds the columns for the "review_schedules" table.
	ReviewSchedulesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "document_id", Type: field.TypeString},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "interval_days", Type: field.TypeInt, Default: 1},
		{Name: "next_review_date", Type: field.TypeTime},
		{Name: "version", Type: field.TypeInt64, Default: 0},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ReviewSchedulesTable holds the schema information for the "review_schedules" table.
	ReviewSchedulesTable = &schema.Table{
		Name:       "review_schedules",
		Columns:    ReviewSchedulesColumns,
		PrimaryKey: []*schema.Column{ReviewSchedulesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reviewschedule_document_id_learner_id",
				Unique:  true,
				Columns: []*schema.Column{ReviewSchedulesColumns[1], ReviewSchedulesColumns[2]},
			},
			{
				Name:    "reviewschedule_next_review_date",
				Unique:  false,
				Columns: []*schema.Column{ReviewSchedulesColumns[4]},
			},
		},
	}
	// SessionCountersColumns holds the columns for the "session_counters" table.
	SessionCountersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "document_id", Type: field.TypeString},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "completed_sessions", Type: field.TypeInt, Default: 0},
	}
	// SessionCountersTable holds the schema information for the "session_counters" table.
	SessionCountersTable = &schema.Table{
		Name:       "session_counters",
		Columns:    SessionCountersColumns,
		PrimaryKey: []*schema.Column{SessionCountersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessioncounter_document_id_learner_id",
				Unique:  true,
				Columns: []*schema.Column{SessionCountersColumns[1], SessionCountersColumns[2]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "document_id", Type: field.TypeString},
		{Name: "questions_answered", Type: field.TypeInt, Default: 0},
		{Name: "correct_count", Type: field.TypeInt, Default: 0},
		{Name: "score", Type: field.TypeFloat64},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_document_id_learner_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[5], SessionEventsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttemptEventsTable,
		DocumentMasteriesTable,
		EventSequencesTable,
		ItemMasteriesTable,
		QuizItemsTable,
		RegenEventsTable,
		ReviewSchedulesTable,
		SessionCountersTable,
		SessionEventsTable,
	}
)

func init() {
}
