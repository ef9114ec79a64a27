package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/jgm-source/cliente-davi-gomez/infrastructure/database/postgres"
	"github.com/jgm-source/cliente-davi-gomez/internal/domain"
)

const credentialsTable = "credenciais"

// ErrCredentialExists indica uma gravação concorrente do primeiro cadastro:
// outro processo inseriu o registro entre a leitura e a inserção
var ErrCredentialExists = errors.New("credenciais já cadastradas")

// CredentialRepository acessa o registro único de credenciais da Meta.
// A tabela comporta no máximo um registro vivo por instalação; a ausência
// do registro é o estado "não configurado" e não um erro.
type CredentialRepository interface {
	Get(ctx context.Context) (*domain.Credential, error)
	Insert(ctx context.Context, credential *domain.Credential) (*domain.Credential, error)
	Update(ctx context.Context, credential *domain.Credential) error
}

type credentialRepository struct {
	conn postgres.Conn
}

func NewCredentialRepository(conn postgres.Conn) CredentialRepository {
	return &credentialRepository{
		conn: conn,
	}
}

func (r *credentialRepository) Get(ctx context.Context) (*domain.Credential, error) {
	credentialSQL, credentialArgs, err := squirrel.
		Select("id, pixel_id, page_id, access_token, webhook, link_instrucao").
		From(credentialsTable).
		OrderBy("id ASC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de credenciais")
	}

	row := r.conn.QueryRow(ctx, credentialSQL, credentialArgs...)

	credential, err := r.deserializeCredential(row)
	if err != nil {
		if err == sql.ErrNoRows {
			// Nenhuma credencial cadastrada ainda
			return nil, nil
		}
		return nil, err
	}

	return credential, nil
}

func (r *credentialRepository) Insert(ctx context.Context, credential *domain.Credential) (*domain.Credential, error) {
	// Os campos webhook e link_instrucao são preenchidos por colaborador
	// externo; a inserção só grava os três campos editáveis e lê o restante
	// de volta com RETURNING.
	insertSQL, insertArgs, err := squirrel.
		Insert(credentialsTable).
		Columns("pixel_id", "page_id", "access_token").
		Values(credential.PixelID, credential.PageID, credential.AccessToken).
		Suffix("RETURNING id, COALESCE(webhook, ''), COALESCE(link_instrucao, '')").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de inserção de credenciais")
	}

	saved := *credential
	err = r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		// A tabela comporta um único registro vivo: o lock serializa
		// gravações concorrentes do primeiro cadastro
		if _, err := tx.ExecContext(ctx, "LOCK TABLE "+credentialsTable+" IN SHARE ROW EXCLUSIVE MODE"); err != nil {
			return errors.Wrap(err, "erro ao bloquear a tabela de credenciais")
		}

		countSQL, _, err := squirrel.Select("COUNT(*)").From(credentialsTable).ToSql()
		if err != nil {
			return errors.Wrap(err, "erro ao construir a query de contagem de credenciais")
		}

		var existing int
		if err := tx.QueryRowContext(ctx, countSQL).Scan(&existing); err != nil {
			return errors.Wrap(err, "erro ao verificar credenciais existentes")
		}
		if existing > 0 {
			return ErrCredentialExists
		}

		return tx.QueryRowContext(ctx, insertSQL, insertArgs...).
			Scan(&saved.ID, &saved.WebhookURL, &saved.InstructionsLink)
	})
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, errors.Wrapf(pqErr, "erro de banco de dados (code: %s)", pqErr.Code)
		}
		if errors.Is(err, ErrCredentialExists) {
			return nil, err
		}
		return nil, errors.Wrap(err, "erro ao inserir credenciais")
	}

	return &saved, nil
}

func (r *credentialRepository) Update(ctx context.Context, credential *domain.Credential) error {
	if credential.ID == 0 {
		return errors.New("ID is required")
	}

	updateSQL, updateArgs, err := squirrel.
		Update(credentialsTable).
		Set("pixel_id", credential.PixelID).
		Set("page_id", credential.PageID).
		Set("access_token", credential.AccessToken).
		Where(squirrel.Eq{"id": credential.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query de atualização de credenciais")
	}

	result, err := r.conn.Exec(ctx, updateSQL, updateArgs...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return errors.Wrapf(pqErr, "erro de banco de dados (code: %s)", pqErr.Code)
		}
		return errors.Wrap(err, "erro ao atualizar credenciais")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "erro ao verificar linhas afetadas")
	}

	if rowsAffected == 0 {
		return errors.New("credential not found")
	}

	return nil
}

func (r *credentialRepository) deserializeCredential(row *sql.Row) (*domain.Credential, error) {
	credential := &domain.Credential{}

	var webhook, instructionsLink sql.NullString
	if err := row.Scan(
		&credential.ID,
		&credential.PixelID,
		&credential.PageID,
		&credential.AccessToken,
		&webhook,
		&instructionsLink,
	); err != nil {
		return nil, err
	}

	credential.WebhookURL = webhook.String
	credential.InstructionsLink = instructionsLink.String

	return credential, nil
}
