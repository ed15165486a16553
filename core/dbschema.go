package core

import (
	"time"

	"github.com/lib/pq"
)

// Account is a registered user
// mutable
type Account struct {
	ID              string         `json:"id" gorm:"primaryKey;type:char(20)"`
	Email           string         `json:"email" gorm:"type:text;uniqueIndex;not null"`
	PasswordHash    string         `json:"-" gorm:"type:text;not null"`
	Username        string         `json:"username" gorm:"type:text"`
	Bio             string         `json:"bio" gorm:"type:text"`
	ProfileImageURL string         `json:"profileImageUrl" gorm:"type:text"`
	ExternalURLs    pq.StringArray `json:"externalUrls" gorm:"type:text[]"`
	Role            string         `json:"role" gorm:"type:text;not null;default:'user'"`
	IsPrivate       bool           `json:"isPrivate" gorm:"type:boolean;default:false"`
	IsEmailVerified bool           `json:"isEmailVerified" gorm:"type:boolean;default:false"`
	IsDeleted       bool           `json:"isDeleted" gorm:"type:boolean;default:false"`
	CreatedAt       time.Time      `json:"createdAt" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
	UpdatedAt       time.Time      `json:"updatedAt" gorm:"autoUpdateTime"`
}

// Actor returns the identity an account acts as
func (a Account) Actor() Actor {
	return Actor{
		ID:        a.ID,
		Email:     a.Email,
		Role:      a.Role,
		IsPrivate: a.IsPrivate,
	}
}

// Post is written by an account, optionally inside a challenge
// mutable
type Post struct {
	ID           string    `json:"id" gorm:"primaryKey;type:char(20)"`
	AccountID    string    `json:"accountId" gorm:"type:char(20);index;not null"`
	ChallengeID  *string   `json:"challengeId,omitempty" gorm:"type:char(20);index"`
	Title        string    `json:"title" gorm:"type:text;not null"`
	Content      string    `json:"content" gorm:"type:text"`
	Type         string    `json:"type" gorm:"type:text;not null;default:'post'"`
	ViewCount    int64     `json:"viewCount" gorm:"type:bigint;default:0"`
	LikeCount    int64     `json:"likeCount" gorm:"type:bigint;default:0"`
	DislikeCount int64     `json:"dislikeCount" gorm:"type:bigint;default:0"`
	CommentCount int64     `json:"commentCount" gorm:"type:bigint;default:0"`
	IsDeleted    bool      `json:"isDeleted" gorm:"type:boolean;default:false"`
	CreatedAt    time.Time `json:"createdAt" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
	UpdatedAt    time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

// Comment belongs to a post, optionally replying to another comment
// mutable
type Comment struct {
	ID              string    `json:"id" gorm:"primaryKey;type:char(20)"`
	PostID          string    `json:"postId" gorm:"type:char(20);index;not null"`
	AccountID       string    `json:"accountId" gorm:"type:char(20);index;not null"`
	ParentCommentID *string   `json:"parentCommentId,omitempty" gorm:"type:char(20)"`
	Content         string    `json:"content" gorm:"type:text;not null"`
	LikeCount       int64     `json:"likeCount" gorm:"type:bigint;default:0"`
	DislikeCount    int64     `json:"dislikeCount" gorm:"type:bigint;default:0"`
	IsDeleted       bool      `json:"isDeleted" gorm:"type:boolean;default:false"`
	CreatedAt       time.Time `json:"createdAt" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
	UpdatedAt       time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

// Challenge is hosted by an account and joined by participants
// mutable
type Challenge struct {
	ID                string     `json:"id" gorm:"primaryKey;type:char(20)"`
	AccountID         string     `json:"accountId" gorm:"type:char(20);index;not null"`
	Title             string     `json:"title" gorm:"type:text;not null"`
	Description       string     `json:"description" gorm:"type:text"`
	Type              string     `json:"type" gorm:"type:text"`
	ChallengeImageURL string     `json:"challengeImageUrl" gorm:"type:text"`
	StartDate         *time.Time `json:"startDate,omitempty" gorm:"type:timestamp with time zone"`
	EndDate           *time.Time `json:"endDate,omitempty" gorm:"type:timestamp with time zone"`
	IsPublished       bool       `json:"isPublished" gorm:"type:boolean;default:false"`
	IsFinished        bool       `json:"isFinished" gorm:"type:boolean;default:false"`
	IsDeleted         bool       `json:"isDeleted" gorm:"type:boolean;default:false"`
	LikeCount         int64      `json:"likeCount" gorm:"type:bigint;default:0"`
	DislikeCount      int64      `json:"dislikeCount" gorm:"type:bigint;default:0"`
	CreatedAt         time.Time  `json:"createdAt" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
	UpdatedAt         time.Time  `json:"updatedAt" gorm:"autoUpdateTime"`
}

// ChallengeParticipant links an account to a challenge it joined
type ChallengeParticipant struct {
	ChallengeID string    `json:"challengeId" gorm:"primaryKey;type:char(20)"`
	AccountID   string    `json:"accountId" gorm:"primaryKey;type:char(20)"`
	IsAccepted  bool      `json:"isAccepted" gorm:"type:boolean;default:true"`
	IsFinished  bool      `json:"isFinished" gorm:"type:boolean;default:false"`
	CreatedAt   time.Time `json:"createdAt" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
}

// ChallengeEvent is a scheduled milestone inside a challenge
// mutable
type ChallengeEvent struct {
	ID            string     `json:"id" gorm:"primaryKey;type:char(20)"`
	ChallengeID   string     `json:"challengeId" gorm:"type:char(20);index;not null"`
	AccountID     string     `json:"accountId" gorm:"type:char(20);not null"`
	Title         string     `json:"title" gorm:"type:text;not null"`
	Description   string     `json:"description" gorm:"type:text"`
	StartDatetime *time.Time `json:"startDatetime,omitempty" gorm:"type:timestamp with time zone"`
	EndDatetime   *time.Time `json:"endDatetime,omitempty" gorm:"type:timestamp with time zone"`
	IsFinished    bool       `json:"isFinished" gorm:"type:boolean;default:false"`
	IsDeleted     bool       `json:"isDeleted" gorm:"type:boolean;default:false"`
	CreatedAt     time.Time  `json:"createdAt" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
	UpdatedAt     time.Time  `json:"updatedAt" gorm:"autoUpdateTime"`
}

// ChallengeEventCheck records a participant checking in to an event
// immutable
type ChallengeEventCheck struct {
	ChallengeEventID string    `json:"challengeEventId" gorm:"primaryKey;type:char(20)"`
	AccountID        string    `json:"accountId" gorm:"primaryKey;type:char(20)"`
	CheckedAt        time.Time `json:"checkedAt" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
}

// Like is a like or dislike of a post, comment, or challenge
type Like struct {
	ID         string    `json:"id" gorm:"primaryKey;type:char(20)"`
	AccountID  string    `json:"accountId" gorm:"type:char(20);not null;uniqueIndex:uniq_like"`
	TargetType string    `json:"targetType" gorm:"type:text;not null;uniqueIndex:uniq_like"`
	TargetID   string    `json:"targetId" gorm:"type:char(20);not null;uniqueIndex:uniq_like"`
	Type       string    `json:"type" gorm:"type:text;not null"`
	CreatedAt  time.Time `json:"createdAt" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
}

// Tag is a global label attached to posts and challenges
// mutable
type Tag struct {
	ID          string    `json:"id" gorm:"primaryKey;type:char(20)"`
	Name        string    `json:"name" gorm:"type:text;uniqueIndex;not null"`
	Description string    `json:"description" gorm:"type:text"`
	HexColor    string    `json:"hexColor" gorm:"type:char(7)"`
	CreatedAt   time.Time `json:"createdAt" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
	UpdatedAt   time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

// TagTarget connects a tag with a post or a challenge
type TagTarget struct {
	TagID       string  `json:"tagId" gorm:"type:char(20);index;not null;uniqueIndex:uniq_tag_post,where:post_id IS NOT NULL;uniqueIndex:uniq_tag_challenge,where:challenge_id IS NOT NULL"`
	PostID      *string `json:"postId,omitempty" gorm:"type:char(20);index;uniqueIndex:uniq_tag_post,where:post_id IS NOT NULL"`
	ChallengeID *string `json:"challengeId,omitempty" gorm:"type:char(20);index;uniqueIndex:uniq_tag_challenge,where:challenge_id IS NOT NULL"`
}

// Message is a direct message between two accounts
type Message struct {
	ID                string    `json:"id" gorm:"primaryKey;type:char(20)"`
	SenderAccountID   string    `json:"senderAccountId" gorm:"type:char(20);index;not null"`
	ReceiverAccountID string    `json:"receiverAccountId" gorm:"type:char(20);index;not null"`
	Content           string    `json:"content" gorm:"type:text;not null"`
	IsRead            bool      `json:"isRead" gorm:"type:boolean;default:false"`
	IsDeleted         bool      `json:"isDeleted" gorm:"type:boolean;default:false"`
	CreatedAt         time.Time `json:"createdAt" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
}
