package app

import (
	"gorm.io/gorm"

	"github.com/ali44ashhad/contractor/internal/attendance"
	"github.com/ali44ashhad/contractor/internal/project"
	"github.com/ali44ashhad/contractor/internal/request"
	"github.com/ali44ashhad/contractor/internal/team"
	"github.com/ali44ashhad/contractor/internal/update"
	"github.com/ali44ashhad/contractor/internal/user"
)

// outbox_events dikelola lewat DDL sendiri karena butuh default dan index
// yang tidak diekspresikan entity GORM manapun.
const outboxDDL = `
CREATE TABLE IF NOT EXISTS outbox_events (
	id uuid PRIMARY KEY,
	request_id text,
	aggregate_type varchar(50) NOT NULL,
	aggregate_id uuid NOT NULL,
	event_type varchar(100) NOT NULL,
	topic varchar(200) NOT NULL,
	payload jsonb NOT NULL,
	status varchar(20) NOT NULL DEFAULT 'pending',
	retry_count int NOT NULL DEFAULT 0,
	error_message text,
	next_retry_at timestamptz,
	processed_at timestamptz,
	created_at timestamptz NOT NULL DEFAULT now(),
	updated_at timestamptz NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_outbox_events_pending
	ON outbox_events (created_at) WHERE status IN ('pending', 'failed');
`

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&user.User{},
		&project.Project{},
		&team.Team{},
		&team.TeamMember{},
		&update.Update{},
		&update.UpdateDocument{},
		&attendance.Attendance{},
		&request.ProjectRequest{},
	); err != nil {
		return err
	}
	return db.Exec(outboxDDL).Error
}
