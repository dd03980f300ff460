package store

import (
	"context"
	"testing"

	"github.com/bytedance/mockey"
	. "github.com/smartystreets/goconvey/convey"
	"gorm.io/gorm"
)

// Soft deletes would bypass the units foreign key and strand unit rows on a
// dead project_id, so both delete paths must run unscoped.
func TestDeletesAreUnscoped(t *testing.T) {
	mockey.PatchConvey("project deletes bypass the soft-delete scope", t, func() {
		db := &gorm.DB{}
		s := &service{db: db}
		unscoped := false
		mockey.Mock((*gorm.DB).WithContext).Return(db).Build()
		mockey.Mock((*gorm.DB).Unscoped).To(func(d *gorm.DB) *gorm.DB {
			unscoped = true
			return d
		}).Build()
		mockey.Mock((*gorm.DB).Delete).Return(&gorm.DB{RowsAffected: 1}).Build()

		So(s.DeleteProject(context.Background(), 1), ShouldBeNil)
		So(unscoped, ShouldBeTrue)
	})

	mockey.PatchConvey("unit deletes bypass the soft-delete scope", t, func() {
		db := &gorm.DB{}
		s := &service{db: db}
		unscoped := false
		mockey.Mock((*gorm.DB).WithContext).Return(db).Build()
		mockey.Mock((*gorm.DB).Unscoped).To(func(d *gorm.DB) *gorm.DB {
			unscoped = true
			return d
		}).Build()
		mockey.Mock((*gorm.DB).Delete).Return(&gorm.DB{RowsAffected: 1}).Build()

		So(s.DeleteUnit(context.Background(), 1), ShouldBeNil)
		So(unscoped, ShouldBeTrue)
	})
}
