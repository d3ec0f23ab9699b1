package textbook

// KeyFieldWidth is the number of hex digits used for the exponent and for the modulus in a key string
const KeyFieldWidth = 10

// KeyStringLength is the total length of a key string
const KeyStringLength = 2 * KeyFieldWidth

// CipherUnitWidth is the number of hex digits used for each encrypted byte
const CipherUnitWidth = 8

// MaxKeyField is the largest value a 10 hex digit key field can carry
const MaxKeyField = 1<<(4*KeyFieldWidth) - 1

// MaxCipherUnit is the largest value an 8 hex digit cipher unit can carry
const MaxCipherUnit = 1<<(4*CipherUnitWidth) - 1

// ExponentSmall is the first conventional public exponent tried during key generation
const ExponentSmall = 3

// ExponentF4 is the second conventional public exponent (Fermat number F4)
const ExponentF4 = 65537

// DefaultLowerLimit is the inclusive lower bound for randomly sampled prime candidates
const DefaultLowerLimit = 10000

// DefaultUpperLimit is the exclusive upper bound for sampled candidates and the primality check bound
const DefaultUpperLimit = 50000

// KeyTypePublic marks the (e, n) half of a key pair
const KeyTypePublic = "public"

// KeyTypePrivate marks the (d, n) half of a key pair
const KeyTypePrivate = "private"

// DefaultEncryptedFile is the ciphertext output file used when none is given
const DefaultEncryptedFile = "rsa.cip"

// DefaultDecryptedFile is the plaintext output file used when none is given
const DefaultDecryptedFile = "rsa.out"
