package chat

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/brunocamarg0/trim-squire/internal/domain"
	"github.com/brunocamarg0/trim-squire/pkg/dbmetrics"
	"github.com/brunocamarg0/trim-squire/pkg/psqlbuilder"
)

var chatColumns = []string{
	"id",
	"barbershop_id",
	"client_id",
	"client_name",
	"last_message",
	"last_message_at",
	"unread_count",
	"status",
	"created_at",
	"updated_at",
}

var messageColumns = []string{
	"id",
	"chat_id",
	"sender_id",
	"sender_role",
	"sender_name",
	"content",
	"type",
	"appointment_data",
	"read",
	"created_at",
}

// Repository репозиторий чатов и сообщений
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория чатов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает чат по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Chat, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(chatColumns...).
		From("chats").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	chat, err := scanChat(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrChatNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan chat: %v", ErrScanRow, err)
	}

	return chat, nil
}

// GetActiveByClient получает активный чат клиента с барбершопом
func (r *Repository) GetActiveByClient(ctx context.Context, barbershopID, clientID string) (*domain.Chat, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(chatColumns...).
		From("chats").
		Where(squirrel.Eq{"barbershop_id": barbershopID}).
		Where(squirrel.Eq{"client_id": clientID}).
		Where(squirrel.Eq{"status": domain.ChatActive}).
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByClient - build select query: %v", ErrBuildQuery, err)
	}

	chat, err := scanChat(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrChatNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByClient - scan chat: %v", ErrScanRow, err)
	}

	return chat, nil
}

// ListActiveByBarbershop получает активные чаты барбершопа, последние по переписке первыми
func (r *Repository) ListActiveByBarbershop(ctx context.Context, barbershopID string) ([]*domain.Chat, error) {
	return r.listActive(ctx, "ListActiveByBarbershop", squirrel.Eq{"barbershop_id": barbershopID})
}

// ListActiveByClient получает активные чаты клиента во всех барбершопах
func (r *Repository) ListActiveByClient(ctx context.Context, clientID string) ([]*domain.Chat, error) {
	return r.listActive(ctx, "ListActiveByClient", squirrel.Eq{"client_id": clientID})
}

func (r *Repository) listActive(ctx context.Context, op string, owner squirrel.Eq) ([]*domain.Chat, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(chatColumns...).
		From("chats").
		Where(owner).
		Where(squirrel.Eq{"status": domain.ChatActive}).
		OrderBy("last_message_at DESC NULLS LAST", "created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	chats := make([]*domain.Chat, 0)
	for rows.Next() {
		chat, err := scanChat(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan chat: %v", ErrScanRow, op, err)
		}
		chats = append(chats, chat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return chats, nil
}

// Create создает новый чат
func (r *Repository) Create(ctx context.Context, chat *domain.Chat) (*domain.Chat, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if chat.ID == "" {
		chat.ID = uuid.NewString()
	}
	if chat.Status == "" {
		chat.Status = domain.ChatActive
	}

	query, args, err := psqlbuilder.Insert("chats").
		Columns("id", "barbershop_id", "client_id", "client_name", "unread_count", "status").
		Values(chat.ID, chat.BarbershopID, chat.ClientID, chat.ClientName, chat.UnreadCount, chat.Status).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	chat.CreatedAt = createdAt.Time
	chat.UpdatedAt = updatedAt.Time

	return chat, nil
}

// InsertMessage сохраняет сообщение
func (r *Repository) InsertMessage(ctx context.Context, msg *domain.Message) (*domain.Message, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.Type == "" {
		msg.Type = domain.MessageText
	}

	var appointmentData interface{}
	if msg.AppointmentData != nil {
		encoded, err := json.Marshal(msg.AppointmentData)
		if err != nil {
			return nil, fmt.Errorf("%w: InsertMessage: %v", ErrEncodeData, err)
		}
		appointmentData = string(encoded)
	}

	query, args, err := psqlbuilder.Insert("messages").
		Columns("id", "chat_id", "sender_id", "sender_role", "sender_name", "content", "type", "appointment_data", "read").
		Values(msg.ID, msg.ChatID, msg.SenderID, msg.SenderRole, msg.SenderName, msg.Content, msg.Type, appointmentData, msg.Read).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: InsertMessage - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("%w: InsertMessage - execute insert: %v", ErrExecQuery, err)
	}
	msg.CreatedAt = createdAt.Time

	return msg, nil
}

// TouchChat обновляет последнее сообщение чата и увеличивает счетчик непрочитанных
func (r *Repository) TouchChat(ctx context.Context, chatID, lastMessage string, at time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("chats").
		Set("last_message", lastMessage).
		Set("last_message_at", at).
		Set("unread_count", squirrel.Expr("unread_count + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": chatID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: TouchChat - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: TouchChat - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: TouchChat - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrChatNotFound
	}

	return nil
}

// ListMessages получает историю сообщений чата в порядке отправки
func (r *Repository) ListMessages(ctx context.Context, chatID string) ([]*domain.Message, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(messageColumns...).
		From("messages").
		Where(squirrel.Eq{"chat_id": chatID}).
		OrderBy("created_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListMessages - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListMessages - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	messages := make([]*domain.Message, 0)
	for rows.Next() {
		var m domain.Message
		var appointmentData []byte
		var createdAt sql.NullTime

		if err := rows.Scan(
			&m.ID,
			&m.ChatID,
			&m.SenderID,
			&m.SenderRole,
			&m.SenderName,
			&m.Content,
			&m.Type,
			&appointmentData,
			&m.Read,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("%w: ListMessages - scan message: %v", ErrScanRow, err)
		}

		if len(appointmentData) > 0 {
			var data domain.AppointmentData
			if err := json.Unmarshal(appointmentData, &data); err != nil {
				return nil, fmt.Errorf("%w: ListMessages - decode appointment data: %v", ErrScanRow, err)
			}
			m.AppointmentData = &data
		}
		m.CreatedAt = createdAt.Time
		messages = append(messages, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListMessages - rows error: %v", ErrScanRow, err)
	}

	return messages, nil
}

// MarkMessagesRead помечает прочитанными сообщения, отправленные не читателем
func (r *Repository) MarkMessagesRead(ctx context.Context, chatID, readerID string) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("messages").
		Set("read", true).
		Where(squirrel.Eq{"chat_id": chatID}).
		Where(squirrel.NotEq{"sender_id": readerID}).
		Where(squirrel.Eq{"read": false}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: MarkMessagesRead - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: MarkMessagesRead - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: MarkMessagesRead - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// ResetUnread обнуляет счетчик непрочитанных сообщений чата
func (r *Repository) ResetUnread(ctx context.Context, chatID string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("chats").
		Set("unread_count", 0).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": chatID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ResetUnread - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: ResetUnread - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: ResetUnread - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrChatNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanChat(row rowScanner) (*domain.Chat, error) {
	var c domain.Chat
	var lastMessage sql.NullString
	var lastMessageAt, createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&c.ID,
		&c.BarbershopID,
		&c.ClientID,
		&c.ClientName,
		&lastMessage,
		&lastMessageAt,
		&c.UnreadCount,
		&c.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if lastMessage.Valid {
		c.LastMessage = &lastMessage.String
	}
	if lastMessageAt.Valid {
		c.LastMessageAt = &lastMessageAt.Time
	}
	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time

	return &c, nil
}
