package jwt_test

import (
	"time"

	"chainnote/pkg/jwt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("JWTService", func() {
	var (
		service *jwt.JWTService
		info    jwt.TokenInfo
	)

	BeforeEach(func() {
		service = jwt.NewJWTService([]byte("session-secret"))
		info = jwt.TokenInfo{
			Subject:    "addr_test1qz0gxyz",
			Network:    "preview",
			Expiration: time.Hour,
		}
	})

	AfterEach(func() {
		jwt.TimeNow = time.Now
	})

	It("should round-trip wallet session claims", func() {
		token, err := service.Sign(service.Generate(info))
		Expect(err).NotTo(HaveOccurred())

		claims, err := service.Validate(token)
		Expect(err).NotTo(HaveOccurred())

		address, err := jwt.WalletAddress(claims)
		Expect(err).NotTo(HaveOccurred())
		Expect(address).To(Equal("addr_test1qz0gxyz"))
		Expect(claims["network"]).To(Equal("preview"))
	})

	It("should reject a token signed with another secret", func() {
		other := jwt.NewJWTService([]byte("different-secret"))
		token, err := other.Sign(other.Generate(info))
		Expect(err).NotTo(HaveOccurred())

		_, err = service.Validate(token)
		Expect(err).To(MatchError(jwt.ErrTokenNotValid))
	})

	It("should reject an expired session", func() {
		token, err := service.Sign(service.Generate(info))
		Expect(err).NotTo(HaveOccurred())

		jwt.TimeNow = func() time.Time { return time.Now().Add(2 * time.Hour) }

		_, err = service.Validate(token)
		Expect(err).To(MatchError(jwt.ErrTokenExpired))
	})

	It("should reject claims without a subject", func() {
		_, err := jwt.WalletAddress(map[string]interface{}{})
		Expect(err).To(MatchError(jwt.ErrTokenNotValid))
	})
})
