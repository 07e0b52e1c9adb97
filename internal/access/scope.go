package access

import "gorm.io/gorm"

// Scope menerapkan Filter sebagai kondisi GORM pada kolom project id milik tabel.
// Filter kosong (bukan unrestricted) menghasilkan query yang tidak match apa-apa,
// sehingga fetch by-id di luar scope berperilaku persis seperti not-found.
func Scope(f Filter, column string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f.Unrestricted {
			return db
		}
		if len(f.ProjectIDs) == 0 {
			return db.Where("1 = 0")
		}
		return db.Where(column+" IN ?", f.ProjectIDs)
	}
}
