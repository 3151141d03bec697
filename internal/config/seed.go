package config

import (
	"log"
	"os"

	"github.com/The-Tech-Tentacles/CampusHub-sub000/internal/domain/department"
	"github.com/The-Tech-Tentacles/CampusHub-sub000/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v2"
	"gorm.io/gorm"
)

type seedDepartment struct {
	Name string `yaml:"name"`
	Code string `yaml:"code"`
}

type seedAdmin struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Email    string `yaml:"email"`
	FullName string `yaml:"full_name"`
}

type seedFile struct {
	Departments []seedDepartment `yaml:"departments"`
	Admin       *seedAdmin       `yaml:"admin"`
}

// ApplySeed loads the YAML seed file and inserts departments and the
// bootstrap admin if they are not present. Missing seed file is not an
// error; a fresh deployment may provision through the API instead.
func ApplySeed(db *gorm.DB, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("No seed file at %s, skipping seed", path)
			return nil
		}
		return err
	}

	var seed seedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return err
	}

	for _, d := range seed.Departments {
		var existing department.Department
		err := db.Where("code = ?", d.Code).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}
		if err := db.Create(&department.Department{Name: d.Name, Code: d.Code}).Error; err != nil {
			return err
		}
		log.Printf("Seeded department %s (%s)", d.Name, d.Code)
	}

	if seed.Admin != nil {
		var existing user.User
		err := db.Where("username = ?", seed.Admin.Username).First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			hashed, herr := bcrypt.GenerateFromPassword([]byte(seed.Admin.Password), bcrypt.DefaultCost)
			if herr != nil {
				return herr
			}
			admin := user.User{
				Username: seed.Admin.Username,
				Password: string(hashed),
				Email:    seed.Admin.Email,
				FullName: seed.Admin.FullName,
				Role:     user.RoleAdmin,
			}
			if err := db.Create(&admin).Error; err != nil {
				return err
			}
			log.Printf("Seeded admin user %s", admin.Username)
		} else if err != nil {
			return err
		}
	}

	return nil
}
