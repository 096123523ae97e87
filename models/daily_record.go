package models

import (
    "gorm.io/gorm"
)

// DailyRecord is one user's practice entry for one calendar day. Date stays a
// plain YYYY-MM-DD string: it is the lookup key everywhere and the string form
// compares correctly for ranges, so no timezone math happens at the store layer.
type DailyRecord struct {
    gorm.Model
    UserID uint   `gorm:"not null;uniqueIndex:idx_user_date"`
    Date   string `gorm:"type:varchar(10);not null;uniqueIndex:idx_user_date"`
    Done   bool
    Streak int // advisory cache; authoritative value comes from ComputeStreak
    Goal   string

    Routine   []RoutinePose `gorm:"constraint:OnDelete:CASCADE"`
    DailyPose *DailyPose    `gorm:"constraint:OnDelete:CASCADE"`
}

// RoutinePose is one step of a record's planned sequence. Position preserves
// the order the client sent the poses in.
type RoutinePose struct {
    gorm.Model
    DailyRecordID uint `gorm:"index;not null"`
    Position      int

    Title        string
    Image        string
    Instructions string
    Benefits     string
    Done         bool
}

// DailyPose is the separately tracked "pose of the day", independent of the
// record's routine.
type DailyPose struct {
    gorm.Model
    DailyRecordID uint `gorm:"uniqueIndex;not null"`

    Title        string
    Image        string
    Instructions string
    Benefits     string
    Done         bool
}
