package database

import (
	"gorm.io/gorm"

	"github.com/bookclub/backend/internal/entities"
)

// The Delete* helpers remove rows together with everything that references
// them. They expect to run inside a transaction so a failure leaves no
// half-deleted tree behind.

// DeleteBooks removes books and their weeks.
func DeleteBooks(tx *gorm.DB, bookIDs []uint64) error {
	if len(bookIDs) == 0 {
		return nil
	}
	var weekIDs []uint64
	if err := tx.Model(&entities.Week{}).Where("book_id IN ?", bookIDs).Pluck("id", &weekIDs).Error; err != nil {
		return err
	}
	if err := DeleteWeeks(tx, weekIDs); err != nil {
		return err
	}
	return tx.Where("id IN ?", bookIDs).Delete(&entities.Book{}).Error
}

// DeleteWeeks removes weeks with their chapters and weekly questions.
func DeleteWeeks(tx *gorm.DB, weekIDs []uint64) error {
	if len(weekIDs) == 0 {
		return nil
	}
	var chapterIDs []uint64
	if err := tx.Model(&entities.Chapter{}).Where("week_id IN ?", weekIDs).Pluck("id", &chapterIDs).Error; err != nil {
		return err
	}
	if err := DeleteChapters(tx, chapterIDs); err != nil {
		return err
	}

	var questionIDs []uint64
	if err := tx.Model(&entities.WeeklyQuestion{}).Where("week_id IN ?", weekIDs).Pluck("id", &questionIDs).Error; err != nil {
		return err
	}
	if err := DeleteQuestions(tx, questionIDs); err != nil {
		return err
	}

	return tx.Where("id IN ?", weekIDs).Delete(&entities.Week{}).Error
}

// DeleteChapters removes chapters and their comments.
func DeleteChapters(tx *gorm.DB, chapterIDs []uint64) error {
	if len(chapterIDs) == 0 {
		return nil
	}
	if err := tx.Where("chapter_id IN ?", chapterIDs).Delete(&entities.Comment{}).Error; err != nil {
		return err
	}
	return tx.Where("id IN ?", chapterIDs).Delete(&entities.Chapter{}).Error
}

// DeleteQuestions removes weekly questions and their answers.
func DeleteQuestions(tx *gorm.DB, questionIDs []uint64) error {
	if len(questionIDs) == 0 {
		return nil
	}
	if err := tx.Where("question_id IN ?", questionIDs).Delete(&entities.QuestionAnswer{}).Error; err != nil {
		return err
	}
	return tx.Where("id IN ?", questionIDs).Delete(&entities.WeeklyQuestion{}).Error
}

// DeleteUsers removes users with the comments and answers they wrote.
func DeleteUsers(tx *gorm.DB, userIDs []uint64) error {
	if len(userIDs) == 0 {
		return nil
	}
	if err := tx.Where("user_id IN ?", userIDs).Delete(&entities.Comment{}).Error; err != nil {
		return err
	}
	if err := tx.Where("user_id IN ?", userIDs).Delete(&entities.QuestionAnswer{}).Error; err != nil {
		return err
	}
	return tx.Where("id IN ?", userIDs).Delete(&entities.User{}).Error
}
