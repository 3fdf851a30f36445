package inheritance

import (
	"github.com/taxlab/bizcalc/internal/domain"
)

// GenerateChecklist derives the practical filing checklist from the input
// record. Completion flags are predicates over the input; items conditional
// on headcount only appear when the threshold is met. Purely advisory.
func GenerateChecklist(input *domain.BusinessInheritanceInput) *domain.PracticalChecklist {
	pc := &domain.PracticalChecklist{}

	pc.PreFiling = []domain.ChecklistItem{
		{
			Title:     "업력 3년 이상 확인",
			Detail:    "법인 등기부등본 또는 사업자등록증으로 확인",
			Phase:     domain.PhasePreFiling,
			Completed: input.BusinessYears >= minBusinessYears,
		},
		{
			Title:     "가업 자산과 개인 자산의 구분",
			Detail:    "가업용 자산 명세 작성",
			Phase:     domain.PhasePreFiling,
			Completed: input.BusinessAssetValue.IsPositive(),
		},
		{
			Title:     "상속인의 가업 종사 계획 확정",
			Phase:     domain.PhasePreFiling,
			Completed: input.ContinuousManagement,
		},
		{
			Title:     "상속 재산 평가액 산정",
			Detail:    "부동산·주식·영업권 등에 대한 감정 평가",
			Phase:     domain.PhasePreFiling,
			Completed: input.TotalValue.IsPositive(),
		},
	}

	pc.DuringFiling = []domain.ChecklistItem{
		{
			Title:     "상속세 과세표준 신고서 작성",
			Detail:    "상속 개시일이 속하는 달의 말일부터 6개월 이내 신고",
			Phase:     domain.PhaseDuringFiling,
			Completed: false,
		},
		{
			Title:     "가업상속공제 신청서 제출",
			Phase:     domain.PhaseDuringFiling,
			Completed: false,
		},
		{
			Title:     "연부연납 신청 여부 결정",
			Detail:    "5년 균등 분할 납부, 이자 부담 비교 검토",
			Phase:     domain.PhaseDuringFiling,
			Completed: false,
		},
	}

	pc.PostFiling = []domain.ChecklistItem{
		{
			Title:     "10년 사후관리 의무 이행 체계 수립",
			Phase:     domain.PhasePostFiling,
			Completed: input.ContinuousManagement && input.LocationMaintained,
		},
		{
			Title:     "연차 이행 현황 신고 일정 등록",
			Phase:     domain.PhasePostFiling,
			Completed: false,
		},
	}

	if input.EmployeeCount >= employmentPlanThreshold {
		pc.PreFiling = append(pc.PreFiling, domain.ChecklistItem{
			Title:     "고용 유지 계획서 작성",
			Detail:    "상시 근로자 10명 이상 기업의 필수 서류",
			Phase:     domain.PhasePreFiling,
			Completed: input.EmploymentMaintained,
		})
		pc.PostFiling = append(pc.PostFiling, domain.ChecklistItem{
			Title:     "연평균 고용 인원 관리 대장 운영",
			Detail:    "4대보험 가입자 명부 기준",
			Phase:     domain.PhasePostFiling,
			Completed: false,
		})
	}

	pc.Documents = buildDocumentList(input)
	return pc
}

func buildDocumentList(input *domain.BusinessInheritanceInput) []domain.DocumentRequirement {
	docs := []domain.DocumentRequirement{
		{
			Category:  "기본 서류",
			Documents: []string{"피상속인 제적등본", "가족관계증명서", "상속재산 분할 협의서"},
		},
		{
			Category:  "가업 관련",
			Documents: []string{"법인 등기부등본", "최근 3개년 재무제표", "주주명부", "사업자등록증"},
		},
		{
			Category:  "재산 평가",
			Documents: []string{"부동산 등기부등본", "감정평가서", "금융재산 잔액 증명서"},
		},
	}
	if input.EmployeeCount >= employmentPlanThreshold {
		docs = append(docs, domain.DocumentRequirement{
			Category:  "고용 관련",
			Documents: []string{"4대보험 가입자 명부", "고용 유지 계획서", "근로소득 지급명세서"},
		})
	}
	return docs
}
