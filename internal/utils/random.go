package utils

import (
	"fmt"
	"math/rand"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/f1ction1/GeneratorGrafika/internal/domain"
)

var commonFirstNames = []string{
	"Jan", "Piotr", "Krzysztof", "Andrzej", "Tomasz", "Paweł", "Marcin", "Michał",
	"Anna", "Maria", "Katarzyna", "Małgorzata", "Agnieszka", "Barbara", "Ewa", "Magdalena",
}

var commonLastNames = []string{
	"Nowak", "Kowalski", "Wiśniewski", "Wójcik", "Kowalczyk", "Kamiński", "Lewandowski",
	"Zieliński", "Szymański", "Woźniak", "Dąbrowski", "Kozłowski", "Jankowski", "Mazur",
}

var positions = []string{
	"kasjer", "sprzedawca", "magazynier", "recepcjonista", "kelner", "barista",
}

var fractions = []float64{1.0, 1.0, 1.0, 0.75, 0.5, 0.25}

func GenerateRandomEmployee(employerID int64) *domain.Employee {
	return &domain.Employee{
		FirstName:          commonFirstNames[rand.Intn(len(commonFirstNames))],
		LastName:           commonLastNames[rand.Intn(len(commonLastNames))],
		Position:           positions[rand.Intn(len(positions))],
		EmploymentFraction: fractions[rand.Intn(len(fractions))],
		EmployerID:         employerID,
	}
}

var digits = "0123456789"

func GenerateRandomUser(password string, emailDomainName string) (*domain.User, error) {
	firstName := commonFirstNames[rand.Intn(len(commonFirstNames))]
	lastName := commonLastNames[rand.Intn(len(commonLastNames))]

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	local := strings.ToLower(removeDiacritics(firstName + "." + lastName))
	for i := 0; i < rand.Intn(3)+1; i++ {
		local += string(digits[rand.Intn(len(digits))])
	}

	return &domain.User{
		Email:        local + "@" + emailDomainName,
		FirstName:    firstName,
		LastName:     lastName,
		PasswordHash: string(passwordHash),
		Role:         domain.RoleOwner,
	}, nil
}

var diacritics = strings.NewReplacer(
	"ą", "a", "ć", "c", "ę", "e", "ł", "l", "ń", "n", "ó", "o", "ś", "s", "ź", "z", "ż", "z",
	"Ą", "A", "Ć", "C", "Ę", "E", "Ł", "L", "Ń", "N", "Ó", "O", "Ś", "S", "Ź", "Z", "Ż", "Z",
)

func removeDiacritics(s string) string {
	return diacritics.Replace(s)
}

func GenerateRandomOTP() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*")

func GenerateRandomPassword(length int) string {
	random_password := make([]rune, length)
	for i := range random_password {
		random_password[i] = letters[rand.Intn(len(letters))]
	}
	return string(random_password)
}
