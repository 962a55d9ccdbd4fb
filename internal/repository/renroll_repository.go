package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/alhuda-academy/admissions-api/internal/models"
)

// RenrollRepository persists re-enrollment drafts. A draft is identified by
// the (father_email, child_first_name, child_last_name) tuple and each step
// submission replaces the stored document wholesale.
type RenrollRepository struct {
	db *sqlx.DB
}

func NewRenrollRepository(db *sqlx.DB) *RenrollRepository {
	return &RenrollRepository{db: db}
}

const renrollColumns = `id, child_first_name, child_last_name, gender, date_of_birth, ethnicity,
	grade_level, has_additional_children, number_of_children, address1, address2, city, state,
	zip_code, school_district,
	father_first_name, father_last_name, father_phone, father_email, father_address1,
	father_address2, father_city, father_state, father_zip_code, father_occupation, father_employment,
	mother_first_name, mother_last_name, mother_phone, mother_email, is_mother_address_same,
	mother_address1, mother_address2, mother_city, mother_state, mother_zip_code,
	mother_occupation, mother_employment,
	child1_health_changes, child2_health_changes, child3_health_changes, child4_health_changes,
	child5_health_changes,
	emergency1_name, emergency1_phone, emergency1_relationship,
	emergency2_name, emergency2_phone, emergency2_relationship,
	emergency3_name, emergency3_phone, emergency3_relationship,
	authorized_person1, authorized_person1_phone, authorized_person1_relationship,
	authorized_person2, authorized_person2_phone, authorized_person2_relationship,
	authorized_person3, authorized_person3_phone, authorized_person3_relationship,
	hospital_preference, parent_signature,
	guardian_name, guardian_name2, home_phone, guardian_email,
	acknowledge_tuition, acknowledge_textbook_fee, payment_option, tuition_signature,
	current_step, is_completed, submitted_at`

const renrollBindings = `:id, :child_first_name, :child_last_name, :gender, :date_of_birth, :ethnicity,
	:grade_level, :has_additional_children, :number_of_children, :address1, :address2, :city, :state,
	:zip_code, :school_district,
	:father_first_name, :father_last_name, :father_phone, :father_email, :father_address1,
	:father_address2, :father_city, :father_state, :father_zip_code, :father_occupation, :father_employment,
	:mother_first_name, :mother_last_name, :mother_phone, :mother_email, :is_mother_address_same,
	:mother_address1, :mother_address2, :mother_city, :mother_state, :mother_zip_code,
	:mother_occupation, :mother_employment,
	:child1_health_changes, :child2_health_changes, :child3_health_changes, :child4_health_changes,
	:child5_health_changes,
	:emergency1_name, :emergency1_phone, :emergency1_relationship,
	:emergency2_name, :emergency2_phone, :emergency2_relationship,
	:emergency3_name, :emergency3_phone, :emergency3_relationship,
	:authorized_person1, :authorized_person1_phone, :authorized_person1_relationship,
	:authorized_person2, :authorized_person2_phone, :authorized_person2_relationship,
	:authorized_person3, :authorized_person3_phone, :authorized_person3_relationship,
	:hospital_preference, :parent_signature,
	:guardian_name, :guardian_name2, :home_phone, :guardian_email,
	:acknowledge_tuition, :acknowledge_textbook_fee, :payment_option, :tuition_signature,
	:current_step, :is_completed, :submitted_at`

// FindByIdentity looks up the draft for a family/child tuple.
func (r *RenrollRepository) FindByIdentity(ctx context.Context, fatherEmail, childFirstName, childLastName string) (*models.RenrollForm, error) {
	query := `SELECT ` + renrollColumns + ` FROM renroll_forms
	WHERE father_email = $1 AND child_first_name = $2 AND child_last_name = $3 LIMIT 1`
	var form models.RenrollForm
	if err := r.db.GetContext(ctx, &form, query, fatherEmail, childFirstName, childLastName); err != nil {
		return nil, err
	}
	return &form, nil
}

func (r *RenrollRepository) Create(ctx context.Context, form *models.RenrollForm) error {
	if form.ID == "" {
		form.ID = uuid.NewString()
	}
	if form.SubmittedAt.IsZero() {
		form.SubmittedAt = time.Now().UTC()
	}
	const query = `INSERT INTO renroll_forms (` + renrollColumns + `) VALUES (` + renrollBindings + `)`
	if _, err := r.db.NamedExecContext(ctx, query, form); err != nil {
		return fmt.Errorf("create renroll form: %w", err)
	}
	return nil
}

// Update overwrites every column of an existing draft. Step submissions carry
// the full document, so a partial update would resurrect stale values.
func (r *RenrollRepository) Update(ctx context.Context, form *models.RenrollForm) error {
	form.SubmittedAt = time.Now().UTC()
	const query = `UPDATE renroll_forms SET
	child_first_name = :child_first_name, child_last_name = :child_last_name, gender = :gender,
	date_of_birth = :date_of_birth, ethnicity = :ethnicity, grade_level = :grade_level,
	has_additional_children = :has_additional_children, number_of_children = :number_of_children,
	address1 = :address1, address2 = :address2, city = :city, state = :state, zip_code = :zip_code,
	school_district = :school_district,
	father_first_name = :father_first_name, father_last_name = :father_last_name,
	father_phone = :father_phone, father_email = :father_email, father_address1 = :father_address1,
	father_address2 = :father_address2, father_city = :father_city, father_state = :father_state,
	father_zip_code = :father_zip_code, father_occupation = :father_occupation,
	father_employment = :father_employment,
	mother_first_name = :mother_first_name, mother_last_name = :mother_last_name,
	mother_phone = :mother_phone, mother_email = :mother_email,
	is_mother_address_same = :is_mother_address_same, mother_address1 = :mother_address1,
	mother_address2 = :mother_address2, mother_city = :mother_city, mother_state = :mother_state,
	mother_zip_code = :mother_zip_code, mother_occupation = :mother_occupation,
	mother_employment = :mother_employment,
	child1_health_changes = :child1_health_changes, child2_health_changes = :child2_health_changes,
	child3_health_changes = :child3_health_changes, child4_health_changes = :child4_health_changes,
	child5_health_changes = :child5_health_changes,
	emergency1_name = :emergency1_name, emergency1_phone = :emergency1_phone,
	emergency1_relationship = :emergency1_relationship,
	emergency2_name = :emergency2_name, emergency2_phone = :emergency2_phone,
	emergency2_relationship = :emergency2_relationship,
	emergency3_name = :emergency3_name, emergency3_phone = :emergency3_phone,
	emergency3_relationship = :emergency3_relationship,
	authorized_person1 = :authorized_person1, authorized_person1_phone = :authorized_person1_phone,
	authorized_person1_relationship = :authorized_person1_relationship,
	authorized_person2 = :authorized_person2, authorized_person2_phone = :authorized_person2_phone,
	authorized_person2_relationship = :authorized_person2_relationship,
	authorized_person3 = :authorized_person3, authorized_person3_phone = :authorized_person3_phone,
	authorized_person3_relationship = :authorized_person3_relationship,
	hospital_preference = :hospital_preference, parent_signature = :parent_signature,
	guardian_name = :guardian_name, guardian_name2 = :guardian_name2, home_phone = :home_phone,
	guardian_email = :guardian_email, acknowledge_tuition = :acknowledge_tuition,
	acknowledge_textbook_fee = :acknowledge_textbook_fee, payment_option = :payment_option,
	tuition_signature = :tuition_signature,
	current_step = :current_step, is_completed = :is_completed, submitted_at = :submitted_at
	WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, form); err != nil {
		return fmt.Errorf("update renroll form: %w", err)
	}
	return nil
}

func (r *RenrollRepository) List(ctx context.Context) ([]models.RenrollForm, error) {
	query := `SELECT ` + renrollColumns + ` FROM renroll_forms ORDER BY submitted_at DESC`
	var forms []models.RenrollForm
	if err := r.db.SelectContext(ctx, &forms, query); err != nil {
		return nil, fmt.Errorf("list renroll forms: %w", err)
	}
	return forms, nil
}

func (r *RenrollRepository) FindByID(ctx context.Context, id string) (*models.RenrollForm, error) {
	query := `SELECT ` + renrollColumns + ` FROM renroll_forms WHERE id = $1`
	var form models.RenrollForm
	if err := r.db.GetContext(ctx, &form, query, id); err != nil {
		return nil, err
	}
	return &form, nil
}

func (r *RenrollRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM renroll_forms WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete renroll form: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete renroll form: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
