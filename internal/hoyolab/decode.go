package hoyolab

// Every payload struct decodes through decodeObject, so a nested object that
// arrives as a non-object leaves the zero value instead of failing the call.

func (v *AccountList) UnmarshalJSON(b []byte) error {
	type plain AccountList
	return decodeObject(b, (*plain)(v))
}

func (v *GameRole) UnmarshalJSON(b []byte) error {
	type plain GameRole
	return decodeObject(b, (*plain)(v))
}

func (v *DetailsData) UnmarshalJSON(b []byte) error {
	type plain DetailsData
	return decodeObject(b, (*plain)(v))
}

func (v *RoleInfo) UnmarshalJSON(b []byte) error {
	type plain RoleInfo
	return decodeObject(b, (*plain)(v))
}

func (v *RawStats) UnmarshalJSON(b []byte) error {
	type plain RawStats
	return decodeObject(b, (*plain)(v))
}

func (v *Avatar) UnmarshalJSON(b []byte) error {
	type plain Avatar
	return decodeObject(b, (*plain)(v))
}

func (v *AvatarWeapon) UnmarshalJSON(b []byte) error {
	type plain AvatarWeapon
	return decodeObject(b, (*plain)(v))
}

func (v *AvatarRelic) UnmarshalJSON(b []byte) error {
	type plain AvatarRelic
	return decodeObject(b, (*plain)(v))
}

func (v *RelicSet) UnmarshalJSON(b []byte) error {
	type plain RelicSet
	return decodeObject(b, (*plain)(v))
}

func (v *WorldExploration) UnmarshalJSON(b []byte) error {
	type plain WorldExploration
	return decodeObject(b, (*plain)(v))
}

func (v *RawOffering) UnmarshalJSON(b []byte) error {
	type plain RawOffering
	return decodeObject(b, (*plain)(v))
}

func (v *AreaExploration) UnmarshalJSON(b []byte) error {
	type plain AreaExploration
	return decodeObject(b, (*plain)(v))
}

func (v *RawBoss) UnmarshalJSON(b []byte) error {
	type plain RawBoss
	return decodeObject(b, (*plain)(v))
}

func (v *RawHome) UnmarshalJSON(b []byte) error {
	type plain RawHome
	return decodeObject(b, (*plain)(v))
}

func (v *AchievementList) UnmarshalJSON(b []byte) error {
	type plain AchievementList
	return decodeObject(b, (*plain)(v))
}

func (v *RawAchievement) UnmarshalJSON(b []byte) error {
	type plain RawAchievement
	return decodeObject(b, (*plain)(v))
}

func (v *CharacterDetailBatch) UnmarshalJSON(b []byte) error {
	type plain CharacterDetailBatch
	return decodeObject(b, (*plain)(v))
}

func (v *PropertyMeta) UnmarshalJSON(b []byte) error {
	type plain PropertyMeta
	return decodeObject(b, (*plain)(v))
}

func (v *CharacterDetail) UnmarshalJSON(b []byte) error {
	type plain CharacterDetail
	return decodeObject(b, (*plain)(v))
}

func (v *DetailWeapon) UnmarshalJSON(b []byte) error {
	type plain DetailWeapon
	return decodeObject(b, (*plain)(v))
}

func (v *DetailRelic) UnmarshalJSON(b []byte) error {
	type plain DetailRelic
	return decodeObject(b, (*plain)(v))
}

func (v *RawConstellation) UnmarshalJSON(b []byte) error {
	type plain RawConstellation
	return decodeObject(b, (*plain)(v))
}

func (v *RawSkill) UnmarshalJSON(b []byte) error {
	type plain RawSkill
	return decodeObject(b, (*plain)(v))
}

func (v *RawProperty) UnmarshalJSON(b []byte) error {
	type plain RawProperty
	return decodeObject(b, (*plain)(v))
}

func (v *SpiralAbyss) UnmarshalJSON(b []byte) error {
	type plain SpiralAbyss
	return decodeObject(b, (*plain)(v))
}

func (v *RankItem) UnmarshalJSON(b []byte) error {
	type plain RankItem
	return decodeObject(b, (*plain)(v))
}

func (v *Schedule) UnmarshalJSON(b []byte) error {
	type plain Schedule
	return decodeObject(b, (*plain)(v))
}

func (v *RoleCombat) UnmarshalJSON(b []byte) error {
	type plain RoleCombat
	return decodeObject(b, (*plain)(v))
}

func (v *RoleCombatEntry) UnmarshalJSON(b []byte) error {
	type plain RoleCombatEntry
	return decodeObject(b, (*plain)(v))
}

func (v *RoleCombatStat) UnmarshalJSON(b []byte) error {
	type plain RoleCombatStat
	return decodeObject(b, (*plain)(v))
}

func (v *HardChallenge) UnmarshalJSON(b []byte) error {
	type plain HardChallenge
	return decodeObject(b, (*plain)(v))
}

func (v *HardChallengeEntry) UnmarshalJSON(b []byte) error {
	type plain HardChallengeEntry
	return decodeObject(b, (*plain)(v))
}

func (v *HardChallengeMode) UnmarshalJSON(b []byte) error {
	type plain HardChallengeMode
	return decodeObject(b, (*plain)(v))
}

func (v *HardChallengeBest) UnmarshalJSON(b []byte) error {
	type plain HardChallengeBest
	return decodeObject(b, (*plain)(v))
}
